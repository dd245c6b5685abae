package handler

import (
	"net/http"

	"poi-finder-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// writeError maps an error to its HTTP status. Errors without a known kind
// are logged and hidden behind a generic message.
func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(apperr.StatusOf(kind), ErrorResponse{Error: apperr.Message(err), Kind: string(kind)})
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, apperr.Wrap(apperr.KindInvalidInput, "request", "invalid request body", err))
		return false
	}
	return true
}
