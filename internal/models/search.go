package models

import "time"

// Phase is the state of the search pipeline.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseGeocoding    Phase = "geocoding"
	PhaseQueryingPOIs Phase = "querying_pois"
	PhaseReady        Phase = "ready"
	PhaseFailed       Phase = "failed"
)

// Zoom levels for the map view.
const (
	ZoomDefault    = 13
	ZoomPlaceFound = 15
)

// DefaultCenter is Ho Chi Minh City, used before the first search.
var DefaultCenter = Coordinate{Lat: 10.762622, Lon: 106.660172}

// ErrorInfo is the display form of a failed operation.
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	// Cause is the raw provider or transport error, when there is one.
	Cause string `json:"cause,omitempty"`
}

// SearchState is the observable state of one search workspace.
type SearchState struct {
	Generation          uint64      `json:"generation"`
	QueryText           string      `json:"query_text"`
	ReferenceCoordinate Coordinate  `json:"reference_coordinate"`
	DisplayName         string      `json:"display_name,omitempty"`
	ZoomHint            int         `json:"zoom_hint"`
	Results             []RankedPOI `json:"results"`
	Phase               Phase       `json:"phase"`
	Error               *ErrorInfo  `json:"error,omitempty"`
	StartedAt           time.Time   `json:"started_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// Settled reports whether the pipeline has finished for the current generation.
func (s SearchState) Settled() bool {
	return s.Phase == PhaseIdle || s.Phase == PhaseReady || s.Phase == PhaseFailed
}

// Clone returns a copy that shares no slices with s.
func (s SearchState) Clone() SearchState {
	out := s
	out.Results = append([]RankedPOI(nil), s.Results...)
	if out.Results == nil {
		out.Results = []RankedPOI{}
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	return out
}
