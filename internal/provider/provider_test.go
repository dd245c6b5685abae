package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"poi-finder-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedKind apperr.Kind
	}{
		{name: "ok", status: http.StatusOK, body: `{"value":"x"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, expectedKind: apperr.KindProviderOverloaded},
		{name: "server error", status: http.StatusBadGateway, expectedKind: apperr.KindProviderOverloaded},
		{name: "client error", status: http.StatusBadRequest, body: "bad query", expectedKind: apperr.KindProviderError},
		{name: "malformed body", status: http.StatusOK, body: `{"value":`, expectedKind: apperr.KindProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
			require.NoError(t, err)

			var out struct {
				Value string `json:"value"`
			}
			err = DoJSON(srv.Client(), req, "test", &out)

			assert.Equal(t, 1, calls, "must never retry")
			if tt.expectedKind == "" {
				require.NoError(t, err)
				assert.Equal(t, "x", out.Value)
				return
			}
			assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
		})
	}
}

func TestDoJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	err = DoJSON(http.DefaultClient, req, "test", &struct{}{})
	assert.Equal(t, apperr.KindProviderError, apperr.KindOf(err))
}
