package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poi-finder-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whoAmI(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.JSON(http.StatusOK, gin.H{"user_id": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": s.UserID})
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := session.NewVerifier("test-secret")

	valid, err := verifier.Issue(session.Session{UserID: "user-1", Email: "a@example.com"}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	expired, err := verifier.Issue(session.Session{UserID: "user-1"}, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Authenticate(verifier), whoAmI)
	r.GET("/private", Authenticate(verifier), RequireSession(), whoAmI)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"anonymous passes", "/me", "", http.StatusOK, `{"user_id":""}`},
		{"valid token", "/me", "Bearer " + valid, http.StatusOK, `{"user_id":"user-1"}`},
		{"expired token", "/me", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"garbage token", "/me", "Bearer abc.def", http.StatusUnauthorized, ""},
		{"private without session", "/private", "", http.StatusUnauthorized, ""},
		{"private with session", "/private", "Bearer " + valid, http.StatusOK, `{"user_id":"user-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewIPRateLimiter(0.001, 2).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}
