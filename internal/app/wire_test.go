package app

import (
	"location-weather-service/internal/adapters/location"
	"location-weather-service/internal/config"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/ports"
	"testing"
	"time"
)

func baseConfig() *config.Config {
	return &config.Config{
		WeatherAPIKey:      "owm-key",
		WeatherBaseURL:     "http://weather.invalid",
		Geocoder:           config.GeocoderNominatim,
		NominatimURL:       "http://nominatim.invalid/search",
		GeocodeMaxItems:    3,
		LocationPermission: ports.PermissionGranted,
		DeviceLocation:     &domain.Coordinates{Lat: 1, Lon: 2},
		HTTPTimeout:        time.Second,
	}
}

func TestNewGeocoderSelectsProvider(t *testing.T) {
	cfg := baseConfig()

	g, err := NewGeocoder(cfg)
	if err != nil {
		t.Fatalf("nominatim: %v", err)
	}
	if _, ok := g.(*location.NominatimGeocoder); !ok {
		t.Fatalf("expected *NominatimGeocoder, got %T", g)
	}

	cfg.Geocoder = config.GeocoderORS
	cfg.ORSAPIKey = "ors-key"
	g, err = NewGeocoder(cfg)
	if err != nil {
		t.Fatalf("ors: %v", err)
	}
	if _, ok := g.(*location.ORSGeocoder); !ok {
		t.Fatalf("expected *ORSGeocoder, got %T", g)
	}
}

func TestNewGeocoderRejectsUnknown(t *testing.T) {
	cfg := baseConfig()
	cfg.Geocoder = "bing"

	if _, err := NewGeocoder(cfg); err == nil {
		t.Fatalf("expected error for unknown geocoder")
	}
}

func TestNewWorkflowRequiresWeatherKey(t *testing.T) {
	cfg := baseConfig()
	cfg.WeatherAPIKey = ""

	if _, err := NewWorkflow(cfg); err == nil {
		t.Fatalf("expected error without weather key")
	}
}

func TestNewWorkflowStartsLoading(t *testing.T) {
	ctrl, err := NewWorkflow(baseConfig())
	if err != nil {
		t.Fatalf("new workflow: %v", err)
	}
	if got := ctrl.State().Status(); got != domain.StatusLoading {
		t.Fatalf("status = %q, want loading", got)
	}
}
