package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"
	"poi-finder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler exposes the per-client search pipeline and side channels
type WorkspaceHandler struct {
	registry WorkspaceRegistry
}

// Service interface for dependency injection
type WorkspaceRegistry interface {
	Create(ctx context.Context) *service.Workspace
	Get(id string) (*service.Workspace, error)
}

// SearchRequest is the body of POST /api/workspaces/:id/search
type SearchRequest struct {
	Query string `json:"query"`
	// Wait blocks the response until the search settles.
	Wait bool `json:"wait"`
}

// SearchAccepted is returned when a search runs in the background
type SearchAccepted struct {
	Generation uint64 `json:"generation"`
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(registry WorkspaceRegistry) *WorkspaceHandler {
	return &WorkspaceHandler{registry: registry}
}

// workspace loads the workspace named in the path and syncs its session with
// the caller's.
func (h *WorkspaceHandler) workspace(c *gin.Context) (*service.Workspace, bool) {
	w, err := h.registry.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	w.Session.Set(currentSession(c))
	return w, true
}

// Create handles POST /api/workspaces
//
//	@Summary	Start a search workspace
//	@Tags		workspaces
//	@Produce	json
//	@Success	201	{object}	service.WorkspaceSnapshot
//	@Router		/workspaces [post]
func (h *WorkspaceHandler) Create(c *gin.Context) {
	w := h.registry.Create(c.Request.Context())
	w.Session.Set(currentSession(c))
	c.JSON(http.StatusCreated, w.Snapshot())
}

// Get handles GET /api/workspaces/:id
//
//	@Summary	Search, weather and translation state of a workspace
//	@Tags		workspaces
//	@Produce	json
//	@Param		id	path		string	true	"workspace id"
//	@Success	200	{object}	service.WorkspaceSnapshot
//	@Failure	404	{object}	ErrorResponse
//	@Router		/workspaces/{id} [get]
func (h *WorkspaceHandler) Get(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, w.Snapshot())
}

// Search handles POST /api/workspaces/:id/search
//
//	@Summary	Submit a place search
//	@Description	Starts a new search generation. Older in-flight searches of the workspace are discarded.
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"workspace id"
//	@Param		request	body		SearchRequest	true	"query"
//	@Success	200		{object}	models.SearchState
//	@Success	202		{object}	SearchAccepted
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/workspaces/{id}/search [post]
func (h *WorkspaceHandler) Search(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}

	var req SearchRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Wait {
		state, err := w.Search.Search(c.Request.Context(), req.Query)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
		return
	}

	generation, err := w.Search.Submit(c.Request.Context(), req.Query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, SearchAccepted{Generation: generation})
}

// Translate handles POST /api/workspaces/:id/translate
//
//	@Summary	Translate text in the workspace translation channel
//	@Description	Failures are reported in the returned channel state, never as a failed search.
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"workspace id"
//	@Param		request	body		TranslateRequest	true	"text"
//	@Success	200		{object}	models.ChannelState[models.Translation]
//	@Failure	404		{object}	ErrorResponse
//	@Router		/workspaces/{id}/translate [post]
func (h *WorkspaceHandler) Translate(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}

	var req TranslateRequest
	if !bindJSON(c, &req) {
		return
	}

	_, _ = w.Translate.Fetch(c.Request.Context(), req.model())
	c.JSON(http.StatusOK, w.Translate.State())
}

// Weather handles POST /api/workspaces/:id/weather
//
//	@Summary	Refresh the workspace weather channel
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"workspace id"
//	@Param		request	body		WeatherRequest	true	"coordinate"
//	@Success	200		{object}	models.ChannelState[models.Weather]
//	@Failure	404		{object}	ErrorResponse
//	@Router		/workspaces/{id}/weather [post]
func (h *WorkspaceHandler) Weather(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}

	var req WeatherRequest
	if !bindJSON(c, &req) {
		return
	}

	_, _ = w.Weather.Fetch(c.Request.Context(), models.WeatherRequest{
		Coordinate:   models.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		LocationName: req.LocationName,
	})
	c.JSON(http.StatusOK, w.Weather.State())
}
