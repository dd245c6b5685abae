package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/session"

	"github.com/rs/zerolog"
)

// Geocoder resolves free text to the best matching place.
type Geocoder interface {
	Resolve(ctx context.Context, query, countryScope string) (*models.PlaceMatch, error)
}

// POISource fetches raw POI candidates around a coordinate.
type POISource interface {
	QueryNearby(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.RawPOI, error)
}

// WeatherDispatcher starts a weather lookup without waiting for it.
type WeatherDispatcher interface {
	Dispatch(ctx context.Context, in models.WeatherRequest)
}

// HistoryWriter saves completed searches for signed-in users.
type HistoryWriter interface {
	SaveSearch(ctx context.Context, rec models.SearchRecord) (*models.SearchRecord, error)
}

// SearchConfig tunes the pipeline.
type SearchConfig struct {
	CountryCode  string
	RadiusMeters float64
	Limit        int
}

// SearchService runs the geocode, POI query and ranking pipeline for one
// workspace and owns its SearchState. Each submitted search gets a new
// generation; results from older generations are dropped on arrival.
type SearchService struct {
	geocoder Geocoder
	pois     POISource
	weather  WeatherDispatcher
	history  HistoryWriter
	cfg      SearchConfig
	log      zerolog.Logger
	now      func() time.Time

	mu         sync.Mutex
	generation uint64
	state      models.SearchState
	cancel     context.CancelFunc
	settled    chan struct{}
	session    *session.Session
	closed     bool

	wg sync.WaitGroup
}

// NewSearchService creates an idle search service centered on the default location.
// weather and history may be nil.
func NewSearchService(geocoder Geocoder, pois POISource, weather WeatherDispatcher, history HistoryWriter, cfg SearchConfig, log zerolog.Logger) *SearchService {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultRankLimit
	}
	s := &SearchService{
		geocoder: geocoder,
		pois:     pois,
		weather:  weather,
		history:  history,
		cfg:      cfg,
		log:      log.With().Str("component", "search").Logger(),
		now:      time.Now,
	}
	s.state = models.SearchState{
		ReferenceCoordinate: models.DefaultCenter,
		ZoomHint:            models.ZoomDefault,
		Results:             []models.RankedPOI{},
		Phase:               models.PhaseIdle,
		UpdatedAt:           s.now(),
	}
	return s
}

// ObserveSession registers the single session observer of this search
// service and returns the function that removes it.
func (s *SearchService) ObserveSession(tracker *session.Tracker) (unsubscribe func()) {
	s.setSession(tracker.Current())
	return tracker.Subscribe(s.setSession)
}

func (s *SearchService) setSession(sess *session.Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
}

// State returns a snapshot of the current search state.
func (s *SearchService) State() models.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Submit starts a new search generation and returns immediately. A blank
// query is rejected without touching the state or the network.
func (s *SearchService) Submit(ctx context.Context, query string) (uint64, error) {
	generation, _, err := s.submit(ctx, query)
	return generation, err
}

// Search submits query and waits until its generation settles, is
// superseded, or ctx ends. It returns the state at that moment.
func (s *SearchService) Search(ctx context.Context, query string) (models.SearchState, error) {
	_, settled, err := s.submit(ctx, query)
	if err != nil {
		return models.SearchState{}, err
	}

	select {
	case <-settled:
	case <-ctx.Done():
	}
	return s.State(), nil
}

func (s *SearchService) submit(ctx context.Context, query string) (uint64, <-chan struct{}, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, apperr.InvalidInput("search", "query cannot be empty")
	}

	// The pipeline outlives the submitting request; only a newer search or
	// Close cancels it.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return 0, nil, apperr.NotFound("search", "workspace is closed")
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.settled != nil {
		close(s.settled)
	}
	s.generation++
	generation := s.generation
	settled := make(chan struct{})
	s.cancel = cancel
	s.settled = settled

	prev := s.state
	now := s.now()
	s.state = models.SearchState{
		Generation:          generation,
		QueryText:           query,
		ReferenceCoordinate: prev.ReferenceCoordinate,
		DisplayName:         prev.DisplayName,
		ZoomHint:            prev.ZoomHint,
		Results:             []models.RankedPOI{},
		Phase:               models.PhaseGeocoding,
		StartedAt:           now,
		UpdatedAt:           now,
	}
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Info().Uint64("generation", generation).Str("query", query).Msg("search started")

	go s.run(runCtx, generation, query)
	return generation, settled, nil
}

func (s *SearchService) run(ctx context.Context, generation uint64, query string) {
	defer s.wg.Done()
	log := s.log.With().Uint64("generation", generation).Logger()

	match, err := s.geocoder.Resolve(ctx, query, s.cfg.CountryCode)
	if err != nil {
		log.Warn().Err(err).Msg("geocoding failed")
		s.commit(generation, "geocode", func(st *models.SearchState) {
			st.Phase = models.PhaseFailed
			st.Error = errorInfo(fmt.Errorf("service: failed to geocode: %w", err))
		})
		return
	}

	ok := s.commit(generation, "geocode", func(st *models.SearchState) {
		st.ReferenceCoordinate = match.Coordinate
		st.DisplayName = match.DisplayName
		st.ZoomHint = models.ZoomPlaceFound
		st.Phase = models.PhaseQueryingPOIs
	})
	if !ok {
		return
	}

	if s.weather != nil {
		s.weather.Dispatch(context.WithoutCancel(ctx), models.WeatherRequest{
			Coordinate:   match.Coordinate,
			LocationName: match.DisplayName,
		})
	}

	candidates, err := s.pois.QueryNearby(ctx, match.Coordinate, s.cfg.RadiusMeters)
	if err != nil {
		log.Warn().Err(err).Msg("poi query failed")
		s.commit(generation, "pois", func(st *models.SearchState) {
			st.Results = []models.RankedPOI{}
			st.Phase = models.PhaseFailed
			st.Error = errorInfo(fmt.Errorf("service: failed to query pois: %w", err))
		})
		return
	}

	ranked := Rank(candidates, match.Coordinate, s.cfg.Limit)
	ok = s.commit(generation, "pois", func(st *models.SearchState) {
		st.Results = ranked
		st.Phase = models.PhaseReady
		st.Error = nil
	})
	if !ok {
		return
	}

	log.Info().Int("candidates", len(candidates)).Int("results", len(ranked)).Msg("search ready")
	s.saveHistory(context.WithoutCancel(ctx), query, match)
}

// commit applies update when generation is still current and reports
// whether it did.
func (s *SearchService) commit(generation uint64, step string, update func(*models.SearchState)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.log.Debug().Err(apperr.Stale(step, generation, s.generation)).Msg("dropping stale result")
		return false
	}

	update(&s.state)
	s.state.UpdatedAt = s.now()

	if s.state.Settled() && s.settled != nil {
		close(s.settled)
		s.settled = nil
	}
	return true
}

func (s *SearchService) saveHistory(ctx context.Context, query string, match *models.PlaceMatch) {
	if s.history == nil {
		return
	}
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()
	if sess == nil {
		return
	}

	_, err := s.history.SaveSearch(ctx, models.SearchRecord{
		UserID:      sess.UserID,
		Query:       query,
		DisplayName: match.DisplayName,
		Center:      match.Coordinate,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("cannot save search")
	}
}

// Close cancels any in-flight search and waits for it to return. Later
// submissions are rejected.
func (s *SearchService) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
