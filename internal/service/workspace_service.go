package service

import (
	"context"
	"sync"
	"time"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Providers are the process-wide collaborators shared by every workspace.
type Providers struct {
	Geocoder   Geocoder
	POIs       POISource
	Weather    WeatherProvider
	Translator Translator
	// History is optional.
	History HistoryWriter
}

// Workspace is one client's search session: a search pipeline, its two side
// channels and the observed account session.
type Workspace struct {
	ID        string
	CreatedAt time.Time
	Search    *SearchService
	Weather   *WeatherChannel
	Translate *TranslateChannel
	Session   *session.Tracker

	unsubscribe func()
	lastSeen    time.Time
}

// WorkspaceSnapshot is the observable state of a workspace.
type WorkspaceSnapshot struct {
	ID          string                                  `json:"id"`
	CreatedAt   time.Time                               `json:"created_at"`
	Search      models.SearchState                      `json:"search"`
	Weather     models.ChannelState[models.Weather]     `json:"weather"`
	Translation models.ChannelState[models.Translation] `json:"translation"`
	Session     *session.Session                        `json:"session,omitempty"`
}

// Snapshot captures the current state of every part of the workspace.
func (w *Workspace) Snapshot() WorkspaceSnapshot {
	return WorkspaceSnapshot{
		ID:          w.ID,
		CreatedAt:   w.CreatedAt,
		Search:      w.Search.State(),
		Weather:     w.Weather.State(),
		Translation: w.Translate.State(),
		Session:     w.Session.Current(),
	}
}

func (w *Workspace) close() {
	w.unsubscribe()
	w.Search.Close()
	w.Weather.Wait()
	w.Translate.Wait()
}

// WorkspaceService creates, looks up and expires workspaces.
type WorkspaceService struct {
	providers Providers
	cfg       SearchConfig
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewWorkspaceService creates an empty registry. Workspaces unused for ttl are evicted by Run.
func NewWorkspaceService(providers Providers, cfg SearchConfig, ttl time.Duration, log zerolog.Logger) *WorkspaceService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &WorkspaceService{
		providers:  providers,
		cfg:        cfg,
		ttl:        ttl,
		log:        log.With().Str("component", "workspaces").Logger(),
		now:        time.Now,
		workspaces: map[string]*Workspace{},
	}
}

// Create starts a workspace and fetches the weather for the default location.
func (s *WorkspaceService) Create(ctx context.Context) *Workspace {
	id := uuid.NewString()
	log := s.log.With().Str("workspace", id).Logger()

	weather := NewWeatherChannel(s.providers.Weather, log)
	w := &Workspace{
		ID:        id,
		CreatedAt: s.now(),
		Search:    NewSearchService(s.providers.Geocoder, s.providers.POIs, weather, s.providers.History, s.cfg, log),
		Weather:   weather,
		Translate: NewTranslateChannel(s.providers.Translator, log),
		Session:   session.NewTracker(),
	}
	w.unsubscribe = w.Search.ObserveSession(w.Session)
	w.lastSeen = w.CreatedAt

	s.mu.Lock()
	s.workspaces[id] = w
	s.mu.Unlock()

	weather.Dispatch(context.WithoutCancel(ctx), models.WeatherRequest{Coordinate: models.DefaultCenter})

	log.Info().Msg("workspace created")
	return w
}

// Get returns the workspace with id and marks it as used.
func (s *WorkspaceService) Get(id string) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workspaces[id]
	if !ok {
		return nil, apperr.NotFound("workspace", "workspace not found")
	}
	w.lastSeen = s.now()
	return w, nil
}

// Len returns the number of live workspaces.
func (s *WorkspaceService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}

// Evict closes workspaces idle for longer than the ttl and returns how many were removed.
func (s *WorkspaceService) Evict() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Workspace
	for id, w := range s.workspaces {
		if w.lastSeen.Before(cutoff) {
			expired = append(expired, w)
			delete(s.workspaces, id)
		}
	}
	s.mu.Unlock()

	for _, w := range expired {
		w.close()
		s.log.Debug().Str("workspace", w.ID).Msg("workspace expired")
	}
	return len(expired)
}

// Run evicts idle workspaces until ctx is done.
func (s *WorkspaceService) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Evict(); n > 0 {
				s.log.Info().Int("evicted", n).Msg("expired workspaces removed")
			}
		}
	}
}

// Close shuts every workspace down.
func (s *WorkspaceService) Close() {
	s.mu.Lock()
	all := make([]*Workspace, 0, len(s.workspaces))
	for id, w := range s.workspaces {
		all = append(all, w)
		delete(s.workspaces, id)
	}
	s.mu.Unlock()

	for _, w := range all {
		w.close()
	}
}
