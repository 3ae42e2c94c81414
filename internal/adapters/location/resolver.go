package location

import (
	"context"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/ports"
	"strings"
)

// Resolver joins a device locator and a geocoder into a LocationResolver.
type Resolver struct {
	ports.DeviceLocator
	geocoder ports.Geocoder
}

func NewResolver(device ports.DeviceLocator, geocoder ports.Geocoder) *Resolver {
	return &Resolver{DeviceLocator: device, geocoder: geocoder}
}

// Geocode rejects blank queries locally; no provider call is made for them.
func (r *Resolver) Geocode(ctx context.Context, query string) ([]domain.Coordinates, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	return r.geocoder.Geocode(ctx, query)
}
