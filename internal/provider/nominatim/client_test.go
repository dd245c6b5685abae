package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"poi-finder-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		Endpoint:       srv.URL,
		CountryCode:    "vn",
		AcceptLanguage: "vi",
		UserAgent:      "test-agent",
	}, srv.Client())
	return client, &calls
}

func TestClient_Resolve(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Hội An Vietnam", q.Get("q"))
		assert.Equal(t, "vn", q.Get("countrycodes"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "jsonv2", q.Get("format"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "vi", r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"15.8801","lon":"108.3380","display_name":"Hội An, Quảng Nam, Việt Nam"}]`))
	})

	match, err := client.Resolve(context.Background(), "  Hội An ", "vn")
	require.NoError(t, err)

	assert.InDelta(t, 15.88, match.Coordinate.Lat, 0.01)
	assert.InDelta(t, 108.33, match.Coordinate.Lon, 0.01)
	assert.Equal(t, "Hội An, Quảng Nam, Việt Nam", match.DisplayName)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClient_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		status        int
		body          string
		expectedKind  apperr.Kind
		expectedCalls int32
	}{
		{
			name:          "blank query never hits the network",
			query:         "   ",
			expectedKind:  apperr.KindInvalidInput,
			expectedCalls: 0,
		},
		{
			name:          "no match",
			query:         "xyzzy qwerty",
			status:        http.StatusOK,
			body:          `[]`,
			expectedKind:  apperr.KindNotFound,
			expectedCalls: 1,
		},
		{
			name:          "rate limited",
			query:         "Hà Nội",
			status:        http.StatusTooManyRequests,
			expectedKind:  apperr.KindProviderOverloaded,
			expectedCalls: 1,
		},
		{
			name:          "forbidden",
			query:         "Hà Nội",
			status:        http.StatusForbidden,
			body:          "blocked",
			expectedKind:  apperr.KindProviderError,
			expectedCalls: 1,
		},
		{
			name:          "unparseable latitude",
			query:         "Hà Nội",
			status:        http.StatusOK,
			body:          `[{"lat":"north","lon":"105.8","display_name":"Hà Nội"}]`,
			expectedKind:  apperr.KindProviderError,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			match, err := client.Resolve(context.Background(), tt.query, "vn")
			assert.Nil(t, match)
			assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Vietnam", CountryName("vn"))
	assert.Equal(t, "Japan", CountryName("JP"))
	assert.Equal(t, "", CountryName("not-a-region"))
}
