package service

import (
	"context"
	"fmt"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
)

// NearbyService ranks the POIs around a coordinate
type NearbyService struct {
	pois   POISource
	radius float64
	limit  int
}

// NewNearbyService creates a new nearby service
func NewNearbyService(pois POISource, defaultRadius float64, limit int) *NearbyService {
	return &NearbyService{pois: pois, radius: defaultRadius, limit: limit}
}

// Nearby queries POIs within radius meters of (lat, lon) and returns the closest ones
func (s *NearbyService) Nearby(ctx context.Context, lat, lon, radius float64) ([]models.RankedPOI, error) {
	if lat < -90 || lat > 90 {
		return nil, apperr.InvalidInput("nearby", fmt.Sprintf("invalid latitude: %f", lat))
	}
	if lon < -180 || lon > 180 {
		return nil, apperr.InvalidInput("nearby", fmt.Sprintf("invalid longitude: %f", lon))
	}
	if radius <= 0 {
		radius = s.radius
	}

	center := models.Coordinate{Lat: lat, Lon: lon}
	candidates, err := s.pois.QueryNearby(ctx, center, radius)
	if err != nil {
		return nil, fmt.Errorf("service: failed to query pois: %w", err)
	}

	return Rank(candidates, center, s.limit), nil
}
