package agent

import (
	"context"
	"encoding/json"
	"log"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/services"
)

// Tool names exposed to the planning agent.
const (
	ToolFindDishes   = "find_traditional_dishes"
	ToolEnrichedPlan = "create_enriched_discovery_plan"
	ToolBudgetPlan   = "create_budget_focused_plan"
	ToolInterestPlan = "create_interest_focused_plan"
)

// Toolbox is the JSON boundary between the deterministic planning core and
// its caller. Every tool takes plain strings and returns either a JSON
// document or an {"error": ...} payload; no Go error crosses this boundary.
type Toolbox struct {
	Dishes *services.DishFinder
	Deps   services.PlanDeps
}

type planDocument struct {
	DiscoveryPlan *domain.DiscoveryPlan `json:"discovery_plan"`
}

type errorDocument struct {
	Error string `json:"error"`
}

// FindDishes returns the raw dish list text, or an error payload.
func (t *Toolbox) FindDishes(ctx context.Context, city string) string {
	dishes, err := t.Dishes.FindDishes(ctx, city)
	if err != nil {
		return errorPayload(err)
	}
	return dishes
}

// EnrichedPlan builds the default discovery plan for a city.
func (t *Toolbox) EnrichedPlan(ctx context.Context, city, dishNames string) string {
	plan, err := services.BuildEnrichedPlan(ctx, t.Deps, city, dishNames)
	if err != nil {
		return errorPayload(err)
	}
	return planPayload(plan)
}

// BudgetPlan builds a budget-sensitive discovery plan.
func (t *Toolbox) BudgetPlan(ctx context.Context, city, dishNames, budget string) string {
	plan, err := services.BuildBudgetPlan(ctx, t.Deps, city, dishNames, budget)
	if err != nil {
		return errorPayload(err)
	}
	return planPayload(plan)
}

// InterestPlan builds an interest-focused discovery plan.
func (t *Toolbox) InterestPlan(ctx context.Context, city, dishNames, interest string) string {
	plan, err := services.BuildInterestPlan(ctx, t.Deps, city, dishNames, interest)
	if err != nil {
		return errorPayload(err)
	}
	return planPayload(plan)
}

func errorPayload(err error) string {
	b, merr := json.Marshal(errorDocument{Error: err.Error()})
	if merr != nil {
		log.Printf("encode error payload failed: %v", merr)
		return `{"error": "internal error"}`
	}
	return string(b)
}

func planPayload(plan *domain.DiscoveryPlan) string {
	b, err := json.MarshalIndent(planDocument{DiscoveryPlan: plan}, "", "  ")
	if err != nil {
		log.Printf("encode plan payload failed: %v", err)
		return errorPayload(err)
	}
	return string(b)
}

// IsErrorPayload reports whether a tool output is an error payload.
// Non-JSON output (e.g. a dish list) is not an error payload.
func IsErrorPayload(payload string) bool {
	var doc errorDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return false
	}
	return doc.Error != ""
}

// ErrorMessage extracts the message from an error payload, or returns the
// payload unchanged when it is not one.
func ErrorMessage(payload string) string {
	var doc errorDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil || doc.Error == "" {
		return payload
	}
	return doc.Error
}
