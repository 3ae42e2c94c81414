package ports

import (
	"context"
	"location-weather-service/internal/domain"
)

// Outcome of a location permission prompt.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// Contract for the device's own position.
type DeviceLocator interface {
	// Ask for foreground location access. Must be awaited before CurrentPosition.
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	// Return the current device fix. Fails with domain.ErrLocationUnavailable.
	CurrentPosition(ctx context.Context) (domain.Coordinates, error)
}

// Contract for forward geocoding of free-text place names.
type Geocoder interface {
	// Return zero or more matches in provider order.
	Geocode(ctx context.Context, query string) ([]domain.Coordinates, error)
}

// Port: device location services plus geocoding.
type LocationResolver interface {
	DeviceLocator
	Geocoder
}
