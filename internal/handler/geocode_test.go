package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, query, countryCode string) (*models.PlaceMatch, error) {
	args := m.Called(ctx, query, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceMatch), args.Error(1)
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGeoCodeHandler_GeoCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hoiAn := &models.PlaceMatch{
		Coordinate:  models.Coordinate{Lat: 15.8801, Lon: 108.338},
		DisplayName: "Hội An, Quảng Nam, Việt Nam",
	}

	tests := []struct {
		name           string
		body           interface{}
		query          string
		country        string
		mockMatch      *models.PlaceMatch
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query",
			body:           gin.H{"country_code": "vn"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful geocoding",
			body:           gin.H{"query": "Hội An"},
			query:          "Hội An",
			mockMatch:      hoiAn,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"coordinate":   map[string]interface{}{"lat": 15.8801, "lon": 108.338},
				"display_name": "Hội An, Quảng Nam, Việt Nam",
			},
		},
		{
			name:           "place not found",
			body:           gin.H{"query": "xyzzy-nowhere", "country_code": "vn"},
			query:          "xyzzy-nowhere",
			country:        "vn",
			mockError:      fmt.Errorf("service: failed to geocode: %w", apperr.NotFound("nominatim", "no place matches the query")),
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "no place matches the query", "kind": "not_found"},
		},
		{
			name:           "provider overloaded",
			body:           gin.H{"query": "Hội An"},
			query:          "Hội An",
			mockError:      apperr.ProviderOverloaded("nominatim", http.StatusTooManyRequests),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   map[string]interface{}{"error": "provider overloaded (status 429)", "kind": "provider_overloaded"},
		},
		{
			name:           "unclassified error",
			body:           gin.H{"query": "Hội An"},
			query:          "Hội An",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Geocode", mock.Anything, tt.query, tt.country).Return(tt.mockMatch, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(t, http.MethodPost, "/api/geocoding", tt.body)

			handler.GeoCode(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var actualBody interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
				assert.Equal(t, tt.expectedBody, actualBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
