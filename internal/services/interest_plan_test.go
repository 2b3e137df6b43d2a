package services

import (
	"context"
	"errors"
	"testing"

	"travel-discovery-service/internal/adapters/places"
	"travel-discovery-service/internal/domain"
)

func interestProvider() *places.MockPlacesProvider {
	galleryCoords := &domain.Coordinates{Lat: 52.505, Lng: 13.44}

	return &places.MockPlacesProvider{
		Centers: map[string]domain.Coordinates{
			"Berlin": {Lat: 52.52, Lng: 13.405},
		},
		Text: map[string][]domain.PlaceRecord{
			"street art in Berlin": {
				{
					PlaceID:     "poi-eastside",
					Name:        "East Side Gallery",
					Rating:      ratingPtr(4.5),
					RatingCount: 90000,
					Coords:      galleryCoords,
				},
				{
					PlaceID:     "poi-hotel",
					Name:        "Grand Plaza Hotel",
					Rating:      ratingPtr(4.9),
					RatingCount: 500000, // rating never rescues lodging
					Coords:      &domain.Coordinates{Lat: 52.51, Lng: 13.41},
				},
				{
					PlaceID:     "poi-urban",
					Name:        "Urban Nation Museum",
					Rating:      ratingPtr(4.6),
					RatingCount: 12000,
					Coords:      &domain.Coordinates{Lat: 52.5, Lng: 13.35},
				},
				{
					PlaceID:     "poi-obscure",
					Name:        "Hidden Mural",
					Rating:      ratingPtr(5.0),
					RatingCount: 40, // below 100 bar
					Coords:      &domain.Coordinates{Lat: 52.49, Lng: 13.36},
				},
			},
		},
		Nearby: map[string][]domain.PlaceRecord{
			"currywurst": {restaurant("res-curry", "Curry 36", 4.3, 21000)},
		},
	}
}

func TestBuildInterestPlanExcludesLodging(t *testing.T) {
	provider := interestProvider()
	deps := PlanDeps{Geocoder: provider, Places: provider}

	plan, err := BuildInterestPlan(context.Background(), deps, "Berlin", "currywurst", "street art")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, a := range plan.AttractionSuggestions {
		if a.Name == "Grand Plaza Hotel" {
			t.Fatal("lodging made it into attraction suggestions")
		}
	}

	if len(plan.AttractionSuggestions) != 2 {
		t.Fatalf("attractions = %d, want 2 (hotel and low-count place filtered)",
			len(plan.AttractionSuggestions))
	}
	if plan.AttractionSuggestions[0].Name != "East Side Gallery" {
		t.Fatalf("top attraction = %q, want most-reviewed", plan.AttractionSuggestions[0].Name)
	}
	if plan.AnchorPoint.Name != "East Side Gallery" {
		t.Fatalf("anchor = %q, want top attraction", plan.AnchorPoint.Name)
	}
}

func TestBuildInterestPlanRestaurantsAroundTopAttraction(t *testing.T) {
	provider := interestProvider()
	deps := PlanDeps{Geocoder: provider, Places: provider}

	plan, err := BuildInterestPlan(context.Background(), deps, "Berlin", "currywurst", "street art")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.NearbyCalls) != 1 {
		t.Fatalf("nearby calls = %d, want 1", len(provider.NearbyCalls))
	}
	q := provider.NearbyCalls[0]

	// Anchored on the gallery, not the city center.
	if q.Location.Lat != 52.505 || q.Location.Lng != 13.44 {
		t.Fatalf("restaurant search location = %+v, want top attraction coords", q.Location)
	}
	if q.RadiusMeters != 2000 {
		t.Fatalf("restaurant radius = %d, want 2000", q.RadiusMeters)
	}
	if q.Type != "restaurant" {
		t.Fatalf("restaurant query type = %q", q.Type)
	}

	if len(plan.RestaurantSuggestions) != 1 || plan.RestaurantSuggestions[0].Name != "Curry 36" {
		t.Fatalf("restaurants = %+v", plan.RestaurantSuggestions)
	}
}

func TestBuildInterestPlanEmptyRestaurantsAccepted(t *testing.T) {
	provider := interestProvider()
	provider.Nearby = nil
	deps := PlanDeps{Geocoder: provider, Places: provider}

	plan, err := BuildInterestPlan(context.Background(), deps, "Berlin", "currywurst", "street art")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.RestaurantSuggestions) != 0 {
		t.Fatalf("restaurants = %d, want 0", len(plan.RestaurantSuggestions))
	}
}

func TestBuildInterestPlanNoMatches(t *testing.T) {
	provider := interestProvider()
	deps := PlanDeps{Geocoder: provider, Places: provider}

	_, err := BuildInterestPlan(context.Background(), deps, "Berlin", "currywurst", "cave diving")

	var empty *EmptyResultError
	if !errors.As(err, &empty) {
		t.Fatalf("error = %v, want EmptyResultError", err)
	}
	if empty.Message != "No attractions match interest 'cave diving' in Berlin." {
		t.Fatalf("message = %q", empty.Message)
	}
}
