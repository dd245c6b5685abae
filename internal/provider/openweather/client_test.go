package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10.762622", q.Get("lat"))
		assert.Equal(t, "106.660172", q.Get("lon"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "secret", q.Get("appid"))
		_, _ = w.Write([]byte(`{
			"name":"Ho Chi Minh City",
			"main":{"temp":31.5,"feels_like":36.2,"humidity":70},
			"wind":{"speed":3.6},
			"weather":[{"description":"mây rải rác","icon":"03d"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "secret", Language: "vi"}, srv.Client())
	weather, err := client.Current(context.Background(), models.WeatherRequest{Coordinate: models.DefaultCenter})
	require.NoError(t, err)

	assert.Equal(t, models.Weather{
		Coordinate:   models.DefaultCenter,
		LocationName: "Ho Chi Minh City",
		Temperature:  31.5,
		FeelsLike:    36.2,
		Humidity:     70,
		WindSpeed:    3.6,
		Description:  "mây rải rác",
		Icon:         "03d",
	}, weather)
}

func TestClient_Current_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, srv.Client())
	_, err := client.Current(context.Background(), models.WeatherRequest{Coordinate: models.DefaultCenter})

	assert.Equal(t, apperr.KindProviderError, apperr.KindOf(err))
}
