package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/ports"
)

// PlanDeps bundles the external collaborators used by the plan builders.
type PlanDeps struct {
	Geocoder ports.Geocoder
	Places   ports.PlaceSearcher
}

// Search radius around a city center for attractions and restaurants.
const cityRadiusMeters = 15000

// cityCenter geocodes a city and maps failures onto the error taxonomy.
func cityCenter(ctx context.Context, geo ports.Geocoder, city string) (domain.Coordinates, error) {
	coords, err := geo.Geocode(ctx, city)
	if errors.Is(err, ports.ErrNoResults) {
		return domain.Coordinates{}, &NotFoundError{
			Message: fmt.Sprintf("'%s' could not be found on the map.", city),
		}
	}
	if err != nil {
		return domain.Coordinates{}, &UpstreamError{
			Message: fmt.Sprintf("Geocode process failed: %v", err),
		}
	}
	return coords, nil
}

// upstream wraps a mid-build failure with the builder's variant prefix.
func upstream(prefix string, err error) error {
	return &UpstreamError{Message: fmt.Sprintf("%s: %v", prefix, err)}
}

// collectRestaurants runs one nearby search per dish keyword, serially in
// dish order, and merges the results by place id. A place returned for
// several dishes keeps the record from the last dish that matched it, so
// the order of the dish list is part of the observable contract.
func collectRestaurants(
	ctx context.Context,
	places ports.PlaceSearcher,
	base ports.NearbyQuery,
	dishNames string,
) ([]domain.PlaceRecord, error) {
	merged := make(map[string]domain.PlaceRecord)
	order := make([]string, 0, 32)

	for _, dish := range strings.Split(dishNames, ",") {
		dish = strings.TrimSpace(dish)
		if dish == "" {
			continue
		}

		q := base
		q.Keyword = dish

		records, err := places.NearbySearch(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("restaurant search for %q: %w", dish, err)
		}

		for _, r := range records {
			if r.PlaceID == "" {
				continue
			}
			if _, ok := merged[r.PlaceID]; !ok {
				order = append(order, r.PlaceID)
			}
			merged[r.PlaceID] = r
		}
	}

	out := make([]domain.PlaceRecord, 0, len(order))
	for _, id := range order {
		out = append(out, merged[id])
	}
	return out, nil
}

// topByRating keeps rated places with more than minCount ratings, sorted by
// rating descending. The sort is stable so equally-rated places keep their
// first-seen order.
func topByRating(records []domain.PlaceRecord, minCount, limit int) []domain.PlaceRecord {
	kept := make([]domain.PlaceRecord, 0, len(records))
	for _, r := range records {
		if r.Rating != nil && r.RatingCount > minCount {
			kept = append(kept, r)
		}
	}

	slices.SortStableFunc(kept, func(a, b domain.PlaceRecord) int {
		if *a.Rating > *b.Rating {
			return -1
		}
		if *a.Rating < *b.Rating {
			return 1
		}
		return 0
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// topByRatingCount keeps places with more than minCount ratings, sorted by
// rating count descending (popularity rather than score).
func topByRatingCount(records []domain.PlaceRecord, minCount, limit int) []domain.PlaceRecord {
	kept := make([]domain.PlaceRecord, 0, len(records))
	for _, r := range records {
		if r.RatingCount > minCount {
			kept = append(kept, r)
		}
	}

	slices.SortStableFunc(kept, func(a, b domain.PlaceRecord) int {
		return b.RatingCount - a.RatingCount
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func normalizeAll(records []domain.PlaceRecord) []domain.LocationEntry {
	entries := make([]domain.LocationEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.NewLocationEntry(r))
	}
	return entries
}

func assemblePlan(
	city string,
	center domain.Coordinates,
	anchor domain.PlaceRecord,
	restaurants []domain.PlaceRecord,
	attractions []domain.PlaceRecord,
) *domain.DiscoveryPlan {
	return &domain.DiscoveryPlan{
		Location: city,
		CityCenter: domain.CityCenter{
			Name:   city + " City Center",
			Coords: center,
		},
		AnchorPoint:           domain.NewLocationEntry(anchor),
		RestaurantSuggestions: normalizeAll(restaurants),
		AttractionSuggestions: normalizeAll(attractions),
	}
}
