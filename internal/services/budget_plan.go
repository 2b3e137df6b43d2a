package services

import (
	"context"
	"fmt"
	"strings"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/ports"
)

// budgetPriceBounds maps free-form budget text onto price-level filters.
// No recognized term means no filter at all.
func budgetPriceBounds(budget string) (minPrice, maxPrice *int) {
	b := strings.ToLower(budget)

	switch {
	case strings.Contains(b, "cheap") || strings.Contains(b, "affordable"):
		max := 2
		return nil, &max
	case strings.Contains(b, "luxury") || strings.Contains(b, "expensive"):
		min := 3
		return &min, nil
	}

	return nil, nil
}

// BuildBudgetPlan assembles a budget-sensitive discovery plan. Restaurant
// searches carry a price-level filter derived from the budget text, the
// rating-count bar is lower than the enriched plan's, and an empty
// restaurant list is fatal even when attractions were found.
func BuildBudgetPlan(
	ctx context.Context,
	deps PlanDeps,
	city string,
	dishNames string,
	budget string,
) (*domain.DiscoveryPlan, error) {
	center, err := cityCenter(ctx, deps.Geocoder, city)
	if err != nil {
		return nil, err
	}

	minPrice, maxPrice := budgetPriceBounds(budget)

	attractionsRaw, err := deps.Places.NearbySearch(ctx, ports.NearbyQuery{
		Location:     center,
		RadiusMeters: cityRadiusMeters,
		Type:         "tourist_attraction",
	})
	if err != nil {
		return nil, upstream("Budget plan failed", err)
	}
	attractions := topByRatingCount(attractionsRaw, 500, 5)

	pool, err := collectRestaurants(ctx, deps.Places, ports.NearbyQuery{
		Location:     center,
		RadiusMeters: cityRadiusMeters,
		Type:         "restaurant",
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	}, dishNames)
	if err != nil {
		return nil, upstream("Budget plan failed", err)
	}
	restaurants := topByRating(pool, 50, 7)

	if len(restaurants) == 0 {
		return nil, &EmptyResultError{
			Message: fmt.Sprintf("No restaurants found in %s for budget '%s'.", city, budget),
		}
	}

	anchor := restaurants[0]
	if len(attractions) > 0 {
		anchor = attractions[0]
	}

	return assemblePlan(city, center, anchor, restaurants, attractions), nil
}
