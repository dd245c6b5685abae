// Package overpass fetches points of interest around a coordinate from the
// OpenStreetMap Overpass API.
package overpass

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/provider"

	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"
	// DefaultRadius is the search radius in meters when none is given.
	DefaultRadius = 1000.0
	// DefaultResultCap bounds how many elements the provider returns. It is
	// independent from the ranking limit applied afterwards. Overpass cuts the
	// output in element id order, not by distance, so the cap stays well above
	// the ranking limit.
	DefaultResultCap = 100
	serverTimeout    = 25
	op               = "overpass"
)

// Config represents the POI client settings.
type Config struct {
	Endpoint          string
	ResultCap         int
	UserAgent         string
	RequestsPerSecond float64
}

// Client queries Overpass for amenity, shop and tourism elements.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *point            `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type point struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type response struct {
	Elements []element `json:"elements"`
	// Remark carries server-side timeouts and runtime errors. Overpass sends
	// them with status 200 and a partial or empty element list.
	Remark string `json:"remark"`
}

func (r response) failed() bool {
	remark := strings.TrimSpace(r.Remark)
	return strings.HasPrefix(remark, "runtime error") || strings.HasPrefix(remark, "runtime remark")
}

// NewClient creates a POI client.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.ResultCap <= 0 {
		cfg.ResultCap = DefaultResultCap
	}
	c := &Client{cfg: cfg, http: httpClient}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// BuildQuery returns the Overpass QL union of the three category predicates
// within radius meters of center.
func BuildQuery(center models.Coordinate, radius float64, resultCap int) string {
	around := fmt.Sprintf("around:%.0f,%.6f,%.6f", radius, center.Lat, center.Lon)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];(", serverTimeout)
	for _, key := range models.CategoryKeys {
		fmt.Fprintf(&b, "nwr(%s)[%s];", around, key)
	}
	fmt.Fprintf(&b, ");out center %d;", resultCap)
	return b.String()
}

// QueryNearby returns the raw candidates around center. Entries without a
// usable position are kept with a nil Coordinate; ranking drops them.
func (c *Client) QueryNearby(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.RawPOI, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadius
	}
	if !center.Valid() {
		return nil, apperr.InvalidInput(op, fmt.Sprintf("invalid center %v", center))
	}

	form := url.Values{}
	form.Set("data", BuildQuery(center, radiusMeters, c.cfg.ResultCap))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperr.ProviderError(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperr.ProviderError(op, err)
		}
	}

	var resp response
	if err := provider.DoJSON(c.http, req, op, &resp); err != nil {
		return nil, err
	}
	if resp.failed() {
		return nil, apperr.ProviderError(op, errors.New(strings.TrimSpace(resp.Remark)))
	}

	pois := make([]models.RawPOI, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		tags := el.Tags
		if tags == nil {
			tags = map[string]string{}
		}
		pois = append(pois, models.RawPOI{
			ID:         el.ID,
			Type:       el.Type,
			Coordinate: el.position(),
			Tags:       tags,
		})
	}
	return pois, nil
}

// position normalizes a direct node position or a way/relation center.
func (e element) position() *models.Coordinate {
	if e.Lat != nil && e.Lon != nil {
		return &models.Coordinate{Lat: *e.Lat, Lon: *e.Lon}
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return &models.Coordinate{Lat: *e.Center.Lat, Lon: *e.Center.Lon}
	}
	return nil
}
