package dto

import "encoding/json"

type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse carries the rendered itinerary plus the raw plan document
// for map rendering. DiscoveryPlan is absent when no plan was produced.
type ChatResponse struct {
	Markdown      string          `json:"markdown"`
	DiscoveryPlan json.RawMessage `json:"discovery_plan,omitempty"`
}
