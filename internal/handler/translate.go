package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// TranslateHandler handles one-off translations
type TranslateHandler struct {
	service TranslateService
}

// Service interface for dependency injection
type TranslateService interface {
	Translate(ctx context.Context, in models.TranslationRequest) (models.Translation, error)
}

// TranslateRequest is the body of the translate endpoints
type TranslateRequest struct {
	Text       string `json:"text" binding:"required,max=5000"`
	SourceLang string `json:"source_lang" binding:"omitempty,bcp47_language_tag"`
	TargetLang string `json:"target_lang" binding:"omitempty,bcp47_language_tag"`
}

func (r TranslateRequest) model() models.TranslationRequest {
	return models.TranslationRequest{Text: r.Text, SourceLang: r.SourceLang, TargetLang: r.TargetLang}
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(svc TranslateService) *TranslateHandler {
	return &TranslateHandler{service: svc}
}

// Translate handles POST /api/translate requests
//
//	@Summary	Translate a short text
//	@Tags		translate
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TranslateRequest	true	"text, source and target languages (default en -> vi)"
//	@Success	200		{object}	models.Translation
//	@Failure	400		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/translate [post]
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Translate(c.Request.Context(), req.model())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
