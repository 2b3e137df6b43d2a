package ports

import (
	"context"
	"errors"

	"travel-discovery-service/internal/domain"
)

// Returned by Geocoder implementations when a lookup yields zero candidates.
var ErrNoResults = errors.New("no geocoding results")

// Port: a boundary for resolving free-text place names to coordinates.
type Geocoder interface {
	// Return the best-match coordinates for the given name. The first
	// candidate wins; callers get ErrNoResults when nothing matches.
	Geocode(ctx context.Context, name string) (domain.Coordinates, error)
}
