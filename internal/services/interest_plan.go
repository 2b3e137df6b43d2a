package services

import (
	"context"
	"fmt"
	"strings"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/ports"
)

// Lodging never counts as an attraction, whatever its rating.
var lodgingTerms = []string{"hotel", "hostel", "apart", "residence", "inn"}

func isLodging(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range lodgingTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// BuildInterestPlan assembles a plan around a stated interest. Attractions
// come from a free-text search ("<interest> in <city>") over a wider radius;
// restaurants are searched around the top attraction rather than the city
// center. An empty restaurant list is accepted here; the interest is the
// point of the trip.
func BuildInterestPlan(
	ctx context.Context,
	deps PlanDeps,
	city string,
	dishNames string,
	interest string,
) (*domain.DiscoveryPlan, error) {
	center, err := cityCenter(ctx, deps.Geocoder, city)
	if err != nil {
		return nil, err
	}

	raw, err := deps.Places.TextSearch(ctx, ports.TextQuery{
		Query:        fmt.Sprintf("%s in %s", interest, city),
		Location:     center,
		RadiusMeters: 25000,
	})
	if err != nil {
		return nil, upstream("Interest plan failed", err)
	}

	filtered := make([]domain.PlaceRecord, 0, len(raw))
	for _, r := range raw {
		if isLodging(r.Name) {
			continue
		}
		filtered = append(filtered, r)
	}

	attractions := topByRatingCount(filtered, 100, 5)
	if len(attractions) == 0 {
		return nil, &EmptyResultError{
			Message: fmt.Sprintf("No attractions match interest '%s' in %s.", interest, city),
		}
	}

	top := attractions[0]
	if top.Coords == nil {
		return nil, upstream("Interest plan failed",
			fmt.Errorf("attraction %q has no coordinates", top.Name))
	}

	// Restaurants cluster around the top attraction, not the city center.
	pool, err := collectRestaurants(ctx, deps.Places, ports.NearbyQuery{
		Location:     *top.Coords,
		RadiusMeters: 2000,
		Type:         "restaurant",
	}, dishNames)
	if err != nil {
		return nil, upstream("Interest plan failed", err)
	}
	restaurants := topByRating(pool, 50, 7)

	return assemblePlan(city, center, top, restaurants, attractions), nil
}
