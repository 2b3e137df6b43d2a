package ports

import (
	"context"

	"travel-discovery-service/internal/domain"
)

// NearbyQuery describes a location+radius places search with optional
// keyword, category, and price-level filters.
type NearbyQuery struct {
	Location     domain.Coordinates
	RadiusMeters int
	Keyword      string
	Type         string
	MinPrice     *int
	MaxPrice     *int
}

// TextQuery describes a free-text place search biased to a location.
// Unlike NearbyQuery it accepts arbitrary intent ("street art in Berlin").
type TextQuery struct {
	Query        string
	Location     domain.Coordinates
	RadiusMeters int
}

// Port: a boundary for querying a places service.
// Zero matches is not an error; implementations return an empty slice.
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, q NearbyQuery) ([]domain.PlaceRecord, error)
	TextSearch(ctx context.Context, q TextQuery) ([]domain.PlaceRecord, error)
}
