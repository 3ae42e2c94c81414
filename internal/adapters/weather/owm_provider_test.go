package weather

import (
	"context"
	"errors"
	"location-weather-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const parisPayload = `{
	"weather": [{"id": 800, "main": "Clear", "description": "céu limpo"}],
	"main": {"temp": 18.4, "feels_like": 17.9, "pressure": 1015, "humidity": 62},
	"wind": {"speed": 3.6},
	"sys": {"sunrise": 1700000000, "sunset": 1700036000},
	"name": "Paris"
}`

func newTestProvider(t *testing.T, h http.HandlerFunc) *OWMProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := NewOWMProvider("test-key", srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestFetchCurrentSendsFixedQuery(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"lat":   "48.8566",
			"lon":   "2.3522",
			"appid": "test-key",
			"lang":  "pt_br",
			"units": "metric",
		}
		for k, v := range want {
			if got := q.Get(k); got != v {
				t.Errorf("query %s = %q, want %q", k, got, v)
			}
		}
		w.Write([]byte(parisPayload))
	})

	coord := domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	snap, err := p.FetchCurrent(context.Background(), coord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.WeatherSnapshot{
		Location:    coord,
		Temperature: 18.4,
		FeelsLike:   17.9,
		Humidity:    62,
		Pressure:    1015,
		WindSpeed:   3.6,
		Description: "céu limpo",
		Sunrise:     time.Unix(1700000000, 0).UTC(),
		Sunset:      time.Unix(1700036000, 0).UTC(),
	}
	if snap != want {
		t.Fatalf("snapshot = %+v, want %+v", snap, want)
	}
}

func TestFetchCurrentIsIdempotentForStableService(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(parisPayload))
	})

	coord := domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	first, err := p.FetchCurrent(context.Background(), coord)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := p.FetchCurrent(context.Background(), coord)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if first != second {
		t.Fatalf("fetches differ: %+v vs %+v", first, second)
	}
}

func TestFetchCurrentDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"cod":503,"message":"busy"}`))
	})

	_, err := p.FetchCurrent(context.Background(), domain.Coordinates{Lat: 1, Lon: 1})
	if !errors.Is(err, domain.ErrWeatherService) {
		t.Fatalf("expected ErrWeatherService, got %v", err)
	}

	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected httpStatusError 503, got %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("requests = %d, want 1", hits.Load())
	}
}

func TestFetchCurrentRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"missing main", `{"wind":{"speed":1},"sys":{},"weather":[{"description":"x"}]}`},
		{"missing wind", `{"main":{"temp":1},"sys":{},"weather":[{"description":"x"}]}`},
		{"missing sys", `{"main":{"temp":1},"wind":{"speed":1},"weather":[{"description":"x"}]}`},
		{"empty weather", `{"main":{"temp":1},"wind":{"speed":1},"sys":{},"weather":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := p.FetchCurrent(context.Background(), domain.Coordinates{Lat: 1, Lon: 1})
			if !errors.Is(err, domain.ErrWeatherService) {
				t.Fatalf("expected ErrWeatherService, got %v", err)
			}
		})
	}
}

func TestFetchCurrentTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, err := NewOWMProvider("k", url, time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.FetchCurrent(context.Background(), domain.Coordinates{Lat: 1, Lon: 1})
	if !errors.Is(err, domain.ErrWeatherService) {
		t.Fatalf("expected ErrWeatherService, got %v", err)
	}
}

func TestNewOWMProviderRequiresKey(t *testing.T) {
	if _, err := NewOWMProvider(" ", "", 0); err == nil {
		t.Fatal("expected error for empty key")
	}
}
