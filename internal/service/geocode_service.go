package service

import (
	"context"
	"fmt"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
)

// GeoCodeService resolves a place name outside of any workspace
type GeoCodeService struct {
	geocoder       Geocoder
	defaultCountry string
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(geocoder Geocoder, defaultCountry string) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder, defaultCountry: defaultCountry}
}

// Geocode returns the best match for query inside countryCode, or the default country when empty
func (s *GeoCodeService) Geocode(ctx context.Context, query, countryCode string) (*models.PlaceMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.InvalidInput("geocode", "query cannot be empty")
	}
	if countryCode == "" {
		countryCode = s.defaultCountry
	}

	match, err := s.geocoder.Resolve(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode: %w", err)
	}

	return match, nil
}
