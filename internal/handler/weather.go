package handler

import (
	"context"
	"net/http"

	"poi-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// WeatherHandler handles one-off weather lookups
type WeatherHandler struct {
	service WeatherService
}

// Service interface for dependency injection
type WeatherService interface {
	Current(ctx context.Context, in models.WeatherRequest) (models.Weather, error)
}

// WeatherRequest is the body of POST /api/weather
type WeatherRequest struct {
	Lat          *float64 `json:"lat" binding:"required,latitude"`
	Lon          *float64 `json:"lon" binding:"required,longitude"`
	LocationName string   `json:"location_name"`
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(svc WeatherService) *WeatherHandler {
	return &WeatherHandler{service: svc}
}

// Current handles POST /api/weather requests
//
//	@Summary	Current weather at a coordinate
//	@Tags		weather
//	@Accept		json
//	@Produce	json
//	@Param		request	body		WeatherRequest	true	"coordinate"
//	@Success	200		{object}	models.Weather
//	@Failure	400		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/weather [post]
func (h *WeatherHandler) Current(c *gin.Context) {
	var req WeatherRequest
	if !bindJSON(c, &req) {
		return
	}

	weather, err := h.service.Current(c.Request.Context(), models.WeatherRequest{
		Coordinate:   models.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		LocationName: req.LocationName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, weather)
}
