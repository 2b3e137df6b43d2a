package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"travel-discovery-service/internal/ports"
)

// Agent drives the fixed discovery pipeline for a free-text query:
// extract the city, find dishes, build the plan selected by the policy
// (falling back to the enriched plan when a specialized builder returns an
// error payload), then have the model render the Markdown itinerary.
type Agent struct {
	Tools *Toolbox
	LLM   ports.Completer
}

// Result of one agent run. PlanJSON is empty when no plan was produced;
// Markdown then carries the plain-language failure message.
type Result struct {
	Markdown string
	PlanJSON string
}

const cityPrompt = "Extract the city the user wants to visit from this travel request. " +
	"Return ONLY the city name, nothing else:\n\n%s"

const renderPrompt = `You are an expert global travel planner. Craft a friendly and detailed Markdown summary of the discovery plan below.

For each location, you MUST create a clickable Markdown link using this format:
%s

Your answer must ONLY be the generated Markdown text (no JSON, no tool logs).

%s`

const entryFormat = "* **[Name](Link)** (Rating: [Rating] ⭐)"

// Budget plans additionally show each restaurant's price level.
const budgetEntryFormat = "* **[Name](Link)** (Rating: [Rating] ⭐) - Price: **[Price]**"

func (a *Agent) Run(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("agent run: query must be non-empty")
	}

	city, err := a.extractCity(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("agent run: extract city: %w", err)
	}

	decision := Decide(query)
	log.Printf("agent tool=%s city=%q", decision.Kind.Tool(), city)

	dishes := a.Tools.FindDishes(ctx, city)
	if IsErrorPayload(dishes) {
		// A failed dish lookup degrades the plan but does not abort it;
		// the enriched builder can still surface attractions.
		log.Printf("dish lookup failed: %s", ErrorMessage(dishes))
		dishes = ""
	}

	var payload string
	switch decision.Kind {
	case PlanBudget:
		payload = a.Tools.BudgetPlan(ctx, city, dishes, decision.Budget)
	case PlanInterest:
		payload = a.Tools.InterestPlan(ctx, city, dishes, decision.Interest)
	default:
		payload = a.Tools.EnrichedPlan(ctx, city, dishes)
	}

	// Fallback rule: a failed specialized plan retries as an enriched plan.
	if IsErrorPayload(payload) && decision.Kind != PlanEnriched {
		log.Printf("tool=%s failed (%s), falling back to %s",
			decision.Kind.Tool(), ErrorMessage(payload), ToolEnrichedPlan)
		decision.Kind = PlanEnriched
		payload = a.Tools.EnrichedPlan(ctx, city, dishes)
	}

	if IsErrorPayload(payload) {
		return &Result{Markdown: ErrorMessage(payload)}, nil
	}

	markdown, err := a.renderMarkdown(ctx, payload, decision.Kind)
	if err != nil {
		return nil, fmt.Errorf("agent run: render markdown: %w", err)
	}

	return &Result{Markdown: markdown, PlanJSON: payload}, nil
}

func (a *Agent) extractCity(ctx context.Context, query string) (string, error) {
	response, err := a.LLM.Complete(ctx, fmt.Sprintf(cityPrompt, query))
	if err != nil {
		return "", err
	}

	city := strings.TrimSpace(response)
	if city == "" {
		return "", errors.New("model returned no city")
	}
	return city, nil
}

func (a *Agent) renderMarkdown(ctx context.Context, planJSON string, kind PlanKind) (string, error) {
	format := entryFormat
	if kind == PlanBudget {
		format = budgetEntryFormat
	}

	response, err := a.LLM.Complete(ctx, fmt.Sprintf(renderPrompt, format, planJSON))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response), nil
}
