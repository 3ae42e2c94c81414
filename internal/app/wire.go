package app

import (
	"fmt"
	"location-weather-service/internal/adapters/location"
	"location-weather-service/internal/adapters/weather"
	"location-weather-service/internal/config"
	"location-weather-service/internal/ports"
	"location-weather-service/internal/services"
)

// NewWorkflow wires the concrete device, geocoder and weather adapters behind ports
// and returns a controller over them. Shared by the server and CLI entry points.
func NewWorkflow(cfg *config.Config, opts ...services.Option) (*services.WorkflowController, error) {
	geocoder, err := NewGeocoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("new workflow: %w", err)
	}

	device := location.NewDevice(location.DeviceOptions{
		Permission: cfg.LocationPermission,
		Fixed:      cfg.DeviceLocation,
		IPGeoURL:   cfg.IPGeoURL,
		Timeout:    cfg.HTTPTimeout,
	})

	provider, err := weather.NewOWMProvider(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("new workflow: %w", err)
	}

	return services.NewWorkflowController(location.NewResolver(device, geocoder), provider, opts...), nil
}

// NewGeocoder returns the geocoder selected by cfg.Geocoder.
func NewGeocoder(cfg *config.Config) (ports.Geocoder, error) {
	switch cfg.Geocoder {
	case config.GeocoderORS:
		return location.NewORSGeocoder(cfg.ORSAPIKey, cfg.ORSBaseURL, cfg.GeocodeMaxItems, cfg.HTTPTimeout)
	case config.GeocoderNominatim:
		return location.NewNominatimGeocoder(cfg.NominatimURL, cfg.GeocodeMaxItems, cfg.HTTPTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported geocoder %q", cfg.Geocoder)
	}
}
