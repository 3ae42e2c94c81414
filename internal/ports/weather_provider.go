package ports

import (
	"context"
	"location-weather-service/internal/domain"
)

// Contract for retrieving current conditions at a coordinate.
type WeatherProvider interface {
	// Fetch current conditions. Fails with domain.ErrWeatherService.
	FetchCurrent(ctx context.Context, coord domain.Coordinates) (domain.WeatherSnapshot, error)
}
