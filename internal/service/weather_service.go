package service

import (
	"context"

	"poi-finder-api/internal/models"

	"github.com/rs/zerolog"
)

// WeatherProvider looks up current weather at a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, in models.WeatherRequest) (models.Weather, error)
}

// WeatherChannel is the weather side channel of a workspace.
type WeatherChannel = Channel[models.WeatherRequest, models.Weather]

// NewWeatherChannel creates a weather side channel backed by provider.
func NewWeatherChannel(provider WeatherProvider, log zerolog.Logger) *WeatherChannel {
	return NewChannel[models.WeatherRequest, models.Weather]("weather", provider.Current, log)
}
