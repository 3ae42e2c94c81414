package location

import (
	"context"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/ports"
	"sync"
)

// MockResolver is a scriptable in-memory LocationResolver.
type MockResolver struct {
	Permission    ports.PermissionStatus
	PermissionErr error
	Position      domain.Coordinates
	PositionErr   error

	mu      sync.Mutex
	places  map[string][]domain.Coordinates
	failing map[string]error
	queries []string
}

func NewMockResolver(position domain.Coordinates) *MockResolver {
	return &MockResolver{
		Permission: ports.PermissionGranted,
		Position:   position,
		places:     map[string][]domain.Coordinates{},
		failing:    map[string]error{},
	}
}

// AddPlace registers the results returned for query.
func (m *MockResolver) AddPlace(query string, results ...domain.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.places[query] = results
}

// FailPlace makes geocoding query return err.
func (m *MockResolver) FailPlace(query string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[query] = err
}

func (m *MockResolver) RequestPermission(ctx context.Context) (ports.PermissionStatus, error) {
	if m.PermissionErr != nil {
		return "", m.PermissionErr
	}
	return m.Permission, nil
}

func (m *MockResolver) CurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	if m.PositionErr != nil {
		return domain.Coordinates{}, m.PositionErr
	}
	return m.Position, nil
}

func (m *MockResolver) Geocode(ctx context.Context, query string) ([]domain.Coordinates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = append(m.queries, query)

	if err, ok := m.failing[query]; ok {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeocodeService, err)
	}
	return append([]domain.Coordinates(nil), m.places[query]...), nil
}

// Queries returns every geocode query received, in order.
func (m *MockResolver) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}
