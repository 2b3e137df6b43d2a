package domain

// Named point used to center a plan's map view.
type CityCenter struct {
	Name   string      `json:"name"`
	Coords Coordinates `json:"coords"`
}

// DiscoveryPlan is the unified plan document produced by the plan builders.
// Suggestion lists are ordered best-first. AnchorPoint is the top attraction
// when any exist, otherwise the top restaurant; a plan with neither is never
// constructed. The plan is immutable output data and carries no behavior.
type DiscoveryPlan struct {
	Location              string          `json:"location"`
	CityCenter            CityCenter      `json:"city_center"`
	AnchorPoint           LocationEntry   `json:"anchor_point"`
	RestaurantSuggestions []LocationEntry `json:"restaurant_suggestions"`
	AttractionSuggestions []LocationEntry `json:"attraction_suggestions"`
}
