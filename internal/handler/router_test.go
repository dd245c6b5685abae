package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"poi-finder-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testRouter(history *HistoryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{CORSOrigins: []string{"http://localhost:3000"}}, Handlers{
		GeoCode:   NewGeoCodeHandler(new(MockGeoCodeService)),
		POIs:      NewPOIHandler(new(MockNearbyService)),
		Weather:   NewWeatherHandler(nil),
		Translate: NewTranslateHandler(nil),
		Workspace: NewWorkspaceHandler(nil),
		History:   history,
	}, session.NewVerifier("secret"), zerolog.Nop())
}

func TestRouter_Health(t *testing.T) {
	r := testRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestRouter_HistoryRequiresSession(t *testing.T) {
	r := testRouter(NewHistoryHandler(new(MockHistoryReader)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_HistoryDisabledWithoutDatabase(t *testing.T) {
	r := testRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := testRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/geocoding", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
