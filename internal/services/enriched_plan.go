package services

import (
	"context"
	"fmt"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/ports"
)

// BuildEnrichedPlan assembles the default discovery plan: the city's
// best-known attractions plus restaurants matched to local dish keywords.
//
// Attractions are ranked by popularity (rating count), restaurants by score
// (rating). The plan fails only when both suggestion lists come up empty.
func BuildEnrichedPlan(
	ctx context.Context,
	deps PlanDeps,
	city string,
	dishNames string,
) (*domain.DiscoveryPlan, error) {
	center, err := cityCenter(ctx, deps.Geocoder, city)
	if err != nil {
		return nil, err
	}

	attractionsRaw, err := deps.Places.NearbySearch(ctx, ports.NearbyQuery{
		Location:     center,
		RadiusMeters: cityRadiusMeters,
		Type:         "tourist_attraction",
	})
	if err != nil {
		return nil, upstream("General plan failed", err)
	}
	attractions := topByRatingCount(attractionsRaw, 500, 10)

	pool, err := collectRestaurants(ctx, deps.Places, ports.NearbyQuery{
		Location:     center,
		RadiusMeters: cityRadiusMeters,
	}, dishNames)
	if err != nil {
		return nil, upstream("General plan failed", err)
	}
	restaurants := topByRating(pool, 100, 10)

	if len(attractions) == 0 && len(restaurants) == 0 {
		return nil, &EmptyResultError{
			Message: fmt.Sprintf("No attractions or restaurants found in %s.", city),
		}
	}

	// At least one list is non-empty past the guard above.
	var anchor domain.PlaceRecord
	if len(attractions) > 0 {
		anchor = attractions[0]
	} else {
		anchor = restaurants[0]
	}

	return assemblePlan(city, center, anchor, restaurants, attractions), nil
}
