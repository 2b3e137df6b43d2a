package places

import (
	"context"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/ports"
)

// MockPlacesProvider is a map-backed fake for service tests.
// Nearby results are keyed by keyword when present, else by type;
// text results are keyed by the full query string. Every call is
// recorded so tests can assert on query parameters and call counts.
type MockPlacesProvider struct {
	Centers map[string]domain.Coordinates
	Nearby  map[string][]domain.PlaceRecord
	Text    map[string][]domain.PlaceRecord

	NearbyErr error
	TextErr   error

	GeocodeCalls []string
	NearbyCalls  []ports.NearbyQuery
	TextCalls    []ports.TextQuery
}

func (m *MockPlacesProvider) Geocode(ctx context.Context, name string) (domain.Coordinates, error) {
	m.GeocodeCalls = append(m.GeocodeCalls, name)

	c, ok := m.Centers[name]
	if !ok {
		return domain.Coordinates{}, ports.ErrNoResults
	}
	return c, nil
}

func (m *MockPlacesProvider) NearbySearch(ctx context.Context, q ports.NearbyQuery) ([]domain.PlaceRecord, error) {
	m.NearbyCalls = append(m.NearbyCalls, q)

	if m.NearbyErr != nil {
		return nil, m.NearbyErr
	}

	key := q.Keyword
	if key == "" {
		key = q.Type
	}
	return m.Nearby[key], nil
}

func (m *MockPlacesProvider) TextSearch(ctx context.Context, q ports.TextQuery) ([]domain.PlaceRecord, error) {
	m.TextCalls = append(m.TextCalls, q)

	if m.TextErr != nil {
		return nil, m.TextErr
	}
	return m.Text[q.Query], nil
}
