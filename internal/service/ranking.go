package service

import (
	"sort"

	"poi-finder-api/internal/geo"
	"poi-finder-api/internal/models"
)

// DefaultRankLimit is how many POIs a search keeps.
const DefaultRankLimit = 5

// Rank drops candidates without a usable position, measures the distance of
// the rest to reference and returns the closest limit entries. Equal
// distances keep provider order.
func Rank(candidates []models.RawPOI, reference models.Coordinate, limit int) []models.RankedPOI {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	ranked := make([]models.RankedPOI, 0, len(candidates))
	for _, c := range candidates {
		if c.Coordinate == nil || !c.Coordinate.Valid() {
			continue
		}
		coord := *c.Coordinate
		c.Coordinate = &coord
		ranked = append(ranked, models.RankedPOI{
			RawPOI:         c,
			Name:           c.Label(),
			Category:       c.CategoryTag(),
			DistanceMeters: geo.Distance(reference, coord),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
