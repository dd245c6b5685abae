package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// POIHandler handles nearby POI requests
type POIHandler struct {
	service NearbyService
}

// Service interface for dependency injection
type NearbyService interface {
	Nearby(ctx context.Context, lat, lon, radius float64) ([]models.RankedPOI, error)
}

// POIRequest is the body of POST /api/pois
type POIRequest struct {
	Lat    *float64 `json:"lat" binding:"required,latitude"`
	Lon    *float64 `json:"lon" binding:"required,longitude"`
	Radius float64  `json:"radius" binding:"gte=0,lte=50000"`
}

// POIResponse lists the ranked POIs around the requested point
type POIResponse struct {
	Center models.Coordinate  `json:"center"`
	Radius float64            `json:"radius"`
	POIs   []models.RankedPOI `json:"pois"`
}

// NewPOIHandler creates a new POI handler
func NewPOIHandler(svc NearbyService) *POIHandler {
	return &POIHandler{service: svc}
}

// Nearby handles POST /api/pois requests
//
//	@Summary	Five closest points of interest around a coordinate
//	@Tags		pois
//	@Accept		json
//	@Produce	json
//	@Param		request	body		POIRequest	true	"center and radius in meters"
//	@Success	200		{object}	POIResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/pois [post]
func (h *POIHandler) Nearby(c *gin.Context) {
	var req POIRequest
	if !bindJSON(c, &req) {
		return
	}

	pois, err := h.service.Nearby(c.Request.Context(), *req.Lat, *req.Lon, req.Radius)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, POIResponse{
		Center: models.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		Radius: req.Radius,
		POIs:   pois,
	})
}
