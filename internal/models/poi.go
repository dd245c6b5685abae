package models

// Category tag keys queried from the POI provider, in display priority order.
var CategoryKeys = []string{"amenity", "shop", "tourism"}

// RawPOI is a candidate returned by the spatial query, before ranking.
// Coordinate is nil when the provider gave no usable position.
type RawPOI struct {
	ID         int64             `json:"id"`
	Type       string            `json:"type"`
	Coordinate *Coordinate       `json:"coordinate"`
	Tags       map[string]string `json:"tags"`
}

// Label returns the best human label: name, then brand, then operator.
func (p RawPOI) Label() string {
	for _, key := range []string{"name", "brand", "operator"} {
		if v := p.Tags[key]; v != "" {
			return v
		}
	}
	return ""
}

// CategoryTag returns the first category tag value present on the POI.
func (p RawPOI) CategoryTag() string {
	for _, key := range CategoryKeys {
		if v := p.Tags[key]; v != "" {
			return v
		}
	}
	return ""
}

// RankedPOI is a RawPOI with its distance to the query's reference coordinate.
type RankedPOI struct {
	RawPOI
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	DistanceMeters float64 `json:"distance_meters"`
}
