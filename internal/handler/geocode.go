package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// Service interface for dependency injection
type GeoCodeService interface {
	Geocode(ctx context.Context, query, countryCode string) (*models.PlaceMatch, error)
}

// GeocodeRequest is the body of POST /api/geocoding
type GeocodeRequest struct {
	Query       string `json:"query" binding:"required"`
	CountryCode string `json:"country_code"`
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles POST /api/geocoding requests
//
//	@Summary	Resolve a place name to coordinates
//	@Tags		geocoding
//	@Accept		json
//	@Produce	json
//	@Param		request	body		GeocodeRequest	true	"place name and ISO country code"
//	@Success	200		{object}	models.PlaceMatch
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/geocoding [post]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	var req GeocodeRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.service.Geocode(c.Request.Context(), req.Query, req.CountryCode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}
