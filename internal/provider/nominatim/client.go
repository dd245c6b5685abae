// Package nominatim resolves free-text place names through the OpenStreetMap
// Nominatim search API.
package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/provider"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint  = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "poi-finder-api/1.0"
	op               = "nominatim"
)

// Config represents the geocoder settings.
type Config struct {
	Endpoint       string
	CountryCode    string
	AcceptLanguage string
	UserAgent      string
	// RequestsPerSecond paces outbound calls; zero disables pacing.
	RequestsPerSecond float64
}

// Client is a Nominatim geocoder.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
}

// NewClient creates a geocoder client.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	c := &Client{cfg: cfg, http: httpClient}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// CountryName returns the English name of an ISO 3166 alpha-2 code,
// or an empty string when the code is unknown.
func CountryName(code string) string {
	region, err := language.ParseRegion(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}

// Resolve returns the single best match for query inside countryScope.
func (c *Client) Resolve(ctx context.Context, query, countryScope string) (*models.PlaceMatch, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, apperr.InvalidInput(op, "query cannot be empty")
	}

	scope := strings.ToLower(strings.TrimSpace(countryScope))
	if scope == "" {
		scope = strings.ToLower(c.cfg.CountryCode)
	}
	if name := CountryName(scope); name != "" {
		q = q + " " + name
	}

	values := url.Values{}
	values.Set("q", q)
	values.Set("format", "jsonv2")
	values.Set("addressdetails", "1")
	values.Set("limit", "1")
	if scope != "" {
		values.Set("countrycodes", scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, apperr.ProviderError(op, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.cfg.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", c.cfg.AcceptLanguage)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperr.ProviderError(op, err)
		}
	}

	var places []place
	if err := provider.DoJSON(c.http, req, op, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, apperr.NotFound(op, fmt.Sprintf("no place found for %q", strings.TrimSpace(query)))
	}

	best := places[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(best.Lat), 64)
	if err != nil {
		return nil, apperr.ProviderError(op, fmt.Errorf("invalid latitude %q: %w", best.Lat, err))
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(best.Lon), 64)
	if err != nil {
		return nil, apperr.ProviderError(op, fmt.Errorf("invalid longitude %q: %w", best.Lon, err))
	}

	name := strings.TrimSpace(best.DisplayName)
	if name == "" {
		name = best.Name
	}

	return &models.PlaceMatch{
		Coordinate:  models.Coordinate{Lat: lat, Lon: lon},
		DisplayName: name,
	}, nil
}
