// Package openweather looks up current conditions from the OpenWeatherMap API.
package openweather

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/provider"
)

const (
	DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	op              = "openweather"
)

type Config struct {
	Endpoint string
	APIKey   string
	Language string
}

type Client struct {
	cfg  Config
	http *http.Client
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Current returns the current weather at the requested coordinate in metric units.
func (c *Client) Current(ctx context.Context, in models.WeatherRequest) (models.Weather, error) {
	if !in.Coordinate.Valid() {
		return models.Weather{}, apperr.InvalidInput(op, "coordinate out of range")
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(in.Coordinate.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(in.Coordinate.Lon, 'f', -1, 64))
	values.Set("units", "metric")
	if c.cfg.Language != "" {
		values.Set("lang", c.cfg.Language)
	}
	if c.cfg.APIKey != "" {
		values.Set("appid", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return models.Weather{}, apperr.ProviderError(op, err)
	}
	req.Header.Set("Accept", "application/json")

	var resp currentResponse
	if err := provider.DoJSON(c.http, req, op, &resp); err != nil {
		return models.Weather{}, err
	}

	w := models.Weather{
		Coordinate:   in.Coordinate,
		LocationName: in.LocationName,
		Temperature:  resp.Main.Temp,
		FeelsLike:    resp.Main.FeelsLike,
		Humidity:     resp.Main.Humidity,
		WindSpeed:    resp.Wind.Speed,
	}
	if w.LocationName == "" {
		w.LocationName = resp.Name
	}
	if len(resp.Weather) > 0 {
		w.Description = resp.Weather[0].Description
		w.Icon = resp.Weather[0].Icon
	}
	return w, nil
}
