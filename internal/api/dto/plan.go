package dto

type EnrichedPlanRequest struct {
	City      string `json:"city"`
	DishNames string `json:"dish_names"`
}

type BudgetPlanRequest struct {
	City      string `json:"city"`
	DishNames string `json:"dish_names"`
	Budget    string `json:"budget"`
}

type InterestPlanRequest struct {
	City      string `json:"city"`
	DishNames string `json:"dish_names"`
	Interest  string `json:"interest"`
}
