package config

import (
	"errors"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/ports"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeocoderORS       = "ors"
	GeocoderNominatim = "nominatim"
)

// Config holds runtime settings resolved from the environment (and .env when present).
type Config struct {
	Port string

	WeatherAPIKey  string
	WeatherBaseURL string

	Geocoder        string
	ORSAPIKey       string
	ORSBaseURL      string
	NominatimURL    string
	GeocodeMaxItems int

	LocationPermission ports.PermissionStatus
	// Static device fix. When nil the position comes from IP geolocation.
	DeviceLocation *domain.Coordinates
	IPGeoURL       string

	HTTPTimeout time.Duration
	CORSOrigins []string
	ZipkinURL   string
}

// Load reads .env (if any) and the process environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := &Config{
		Port:           Get("PORT", "8080"),
		WeatherAPIKey:  strings.TrimSpace(os.Getenv("OWM_API_KEY")),
		WeatherBaseURL: Get("OWM_BASE_URL", "https://api.openweathermap.org"),
		Geocoder:       strings.ToLower(Get("GEOCODER", GeocoderORS)),
		ORSAPIKey:      strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:     Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		NominatimURL:   Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		IPGeoURL:       Get("IPGEO_URL", "http://ip-api.com/json/"),
		ZipkinURL:      os.Getenv("ZIPKIN_URL"),
		CORSOrigins:    splitList(Get("CORS_ORIGINS", "http://localhost:3000")),
	}

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("load config: OWM_API_KEY is required")
	}

	switch cfg.Geocoder {
	case GeocoderORS:
		if cfg.ORSAPIKey == "" {
			return nil, errors.New("load config: ORS_API_KEY is required when GEOCODER=ors")
		}
	case GeocoderNominatim:
	default:
		return nil, fmt.Errorf("load config: unsupported GEOCODER %q", cfg.Geocoder)
	}

	maxItems, err := strconv.Atoi(Get("GEOCODE_MAX_RESULTS", "5"))
	if err != nil || maxItems < 1 || maxItems > 40 {
		return nil, fmt.Errorf("load config: GEOCODE_MAX_RESULTS must be between 1 and 40")
	}
	cfg.GeocodeMaxItems = maxItems

	switch perm := ports.PermissionStatus(strings.ToLower(Get("LOCATION_PERMISSION", string(ports.PermissionGranted)))); perm {
	case ports.PermissionGranted, ports.PermissionDenied:
		cfg.LocationPermission = perm
	default:
		return nil, fmt.Errorf("load config: LOCATION_PERMISSION must be %q or %q", ports.PermissionGranted, ports.PermissionDenied)
	}

	loc, err := parseDeviceLocation(os.Getenv("DEVICE_LAT"), os.Getenv("DEVICE_LON"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.DeviceLocation = loc

	timeout, err := time.ParseDuration(Get("HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("load config: invalid HTTP_TIMEOUT")
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDeviceLocation(rawLat, rawLon string) (*domain.Coordinates, error) {
	rawLat, rawLon = strings.TrimSpace(rawLat), strings.TrimSpace(rawLon)
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, errors.New("DEVICE_LAT and DEVICE_LON must be set together")
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid DEVICE_LAT %q", rawLat)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid DEVICE_LON %q", rawLon)
	}

	return &domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
