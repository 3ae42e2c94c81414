package weather

import (
	"context"
	"fmt"
	"location-weather-service/internal/domain"
	"sync"
)

// MockWeatherProvider serves fixed snapshots keyed by coordinate.
type MockWeatherProvider struct {
	mu    sync.Mutex
	m     map[domain.Coordinates]domain.WeatherSnapshot
	calls []domain.Coordinates
}

func NewMockWeatherProvider(snapshots ...domain.WeatherSnapshot) *MockWeatherProvider {
	m := make(map[domain.Coordinates]domain.WeatherSnapshot, len(snapshots))
	for _, s := range snapshots {
		m[s.Location] = s
	}
	return &MockWeatherProvider{m: m}
}

func (p *MockWeatherProvider) FetchCurrent(ctx context.Context, coord domain.Coordinates) (domain.WeatherSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, coord)

	s, ok := p.m[coord]
	if !ok {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: no snapshot for %v", domain.ErrWeatherService, coord)
	}
	return s, nil
}

// Calls returns the coordinates requested so far, in order.
func (p *MockWeatherProvider) Calls() []domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Coordinates(nil), p.calls...)
}
