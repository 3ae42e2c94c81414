package domain

import "errors"

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrEmptyQuery          = errors.New("search query is empty")
	ErrGeocodeEmpty        = errors.New("no geocode results")
	ErrGeocodeService      = errors.New("geocode service error")
	ErrWeatherService      = errors.New("weather service error")
)

// ErrorKind maps an error chain onto a stable label used for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrLocationUnavailable):
		return "location_unavailable"
	case errors.Is(err, ErrEmptyQuery):
		return "empty_query"
	case errors.Is(err, ErrGeocodeEmpty):
		return "geocode_empty"
	case errors.Is(err, ErrGeocodeService):
		return "geocode_service"
	case errors.Is(err, ErrWeatherService):
		return "weather_service"
	default:
		return "unknown"
	}
}
