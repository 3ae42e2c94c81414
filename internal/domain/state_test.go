package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestWorkflowStateStartsLoading(t *testing.T) {
	var s WorkflowState

	if s.Status() != StatusLoading {
		t.Fatalf("status = %q, want %q", s.Status(), StatusLoading)
	}
	if s.Message() != LoadingMessage {
		t.Fatalf("message = %q, want %q", s.Message(), LoadingMessage)
	}
}

func TestWorkflowStateWithDeviceLocation(t *testing.T) {
	var s WorkflowState
	here := Coordinates{Lat: -23.5505, Lon: -46.6333}

	next := s.WithDeviceLocation(here)

	if s.DeviceLocation != nil {
		t.Fatalf("receiver was mutated: %v", s.DeviceLocation)
	}
	if next.DeviceLocation == nil || *next.DeviceLocation != here {
		t.Fatalf("device location = %v, want %v", next.DeviceLocation, here)
	}
	if next.Focus == nil || next.Focus.Center != here {
		t.Fatalf("focus = %v, want centered on %v", next.Focus, here)
	}
	if next.Status() != StatusReady || next.Message() != "" {
		t.Fatalf("status = %q message = %q", next.Status(), next.Message())
	}
}

func TestWorkflowStateDeviceLocationKeepsSearchFocus(t *testing.T) {
	paris := Coordinates{Lat: 48.8566, Lon: 2.3522}
	s := WorkflowState{}.WithSearchMarker(SearchMarker{Coordinates: paris, Label: "Paris"})

	next := s.WithDeviceLocation(Coordinates{Lat: 1, Lon: 1})

	if next.Focus.Center != paris {
		t.Fatalf("focus moved to %v, want %v", next.Focus.Center, paris)
	}
}

func TestWorkflowStateWithErrorClearsLocation(t *testing.T) {
	s := WorkflowState{}.WithError(PermissionDeniedMessage)

	if s.DeviceLocation != nil {
		t.Fatalf("device location = %v, want nil", s.DeviceLocation)
	}
	if s.Status() != StatusDenied {
		t.Fatalf("status = %q, want %q", s.Status(), StatusDenied)
	}
	if s.Message() != PermissionDeniedMessage {
		t.Fatalf("message = %q", s.Message())
	}
}

func TestWorkflowStateWithSearchMarkerReplaces(t *testing.T) {
	first := SearchMarker{Coordinates: Coordinates{Lat: 1, Lon: 2}, Label: "one"}
	second := SearchMarker{Coordinates: Coordinates{Lat: 3, Lon: 4}, Label: "two"}

	s1 := WorkflowState{}.WithSearchMarker(first)
	s2 := s1.WithSearchMarker(second)

	if len(s2.SearchMarkers) != 1 || s2.SearchMarkers[0] != second {
		t.Fatalf("markers = %v, want [%v]", s2.SearchMarkers, second)
	}
	if len(s1.SearchMarkers) != 1 || s1.SearchMarkers[0] != first {
		t.Fatalf("previous state was mutated: %v", s1.SearchMarkers)
	}

	want := Region{Center: second.Coordinates, LatitudeDelta: DefaultLatitudeDelta, LongitudeDelta: DefaultLongitudeDelta}
	if s2.Focus == nil || *s2.Focus != want {
		t.Fatalf("focus = %v, want %v", s2.Focus, want)
	}
}

func TestWorkflowStateCloneDoesNotAlias(t *testing.T) {
	s1 := WorkflowState{}.WithSearchMarker(SearchMarker{Label: "a"})
	s2 := s1.WithWeather(WeatherSnapshot{Description: "céu limpo"})

	s2.SearchMarkers[0].Label = "changed"

	if s1.SearchMarkers[0].Label != "a" {
		t.Fatalf("markers alias between states: %q", s1.SearchMarkers[0].Label)
	}
}

func TestWorkflowStateWithWeather(t *testing.T) {
	snap := WeatherSnapshot{
		Location:    Coordinates{Lat: 48.8566, Lon: 2.3522},
		Temperature: 18.4,
		Sunrise:     time.Unix(1700000000, 0),
	}

	s := WorkflowState{}.WithWeather(snap)

	if s.Weather == nil || *s.Weather != snap {
		t.Fatalf("weather = %v, want %v", s.Weather, snap)
	}
}

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		c    Coordinates
		want bool
	}{
		{Coordinates{Lat: 0, Lon: 0}, true},
		{Coordinates{Lat: 90, Lon: 180}, true},
		{Coordinates{Lat: -90.1, Lon: 0}, false},
		{Coordinates{Lat: 0, Lon: 180.5}, false},
	}

	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("startup: %w", ErrPermissionDenied), "permission_denied"},
		{fmt.Errorf("fix: %w", ErrLocationUnavailable), "location_unavailable"},
		{fmt.Errorf("search %q: %w", "x", ErrGeocodeEmpty), "geocode_empty"},
		{fmt.Errorf("%w: status 500", ErrWeatherService), "weather_service"},
		{fmt.Errorf("boom"), "unknown"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
