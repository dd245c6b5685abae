// Package geo holds the great-circle math used to rank points of interest.
package geo

import (
	"math"

	"poi-finder-api/internal/models"
)

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b models.Coordinate) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dPhi := toRadians(b.Lat - a.Lat)
	dLambda := toRadians(b.Lon - a.Lon)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	hav := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// rounding can push hav just outside [0, 1] for antipodal points
	hav = math.Min(1, math.Max(0, hav))

	return 2 * EarthRadius * math.Atan2(math.Sqrt(hav), math.Sqrt(1-hav))
}
