package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

const historyLimit = 10

// HistoryHandler serves the signed-in user's recent searches
type HistoryHandler struct {
	repo HistoryReader
}

// Repository interface for dependency injection
type HistoryReader interface {
	RecentSearches(ctx context.Context, userID string, limit int) ([]models.SearchRecord, error)
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo HistoryReader) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// Recent handles GET /api/history
//
//	@Summary	Recent searches of the signed-in user
//	@Tags		history
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		models.SearchRecord
//	@Failure	401	{object}	ErrorResponse
//	@Router		/history [get]
func (h *HistoryHandler) Recent(c *gin.Context) {
	s := currentSession(c)

	records, err := h.repo.RecentSearches(c.Request.Context(), s.UserID, historyLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
