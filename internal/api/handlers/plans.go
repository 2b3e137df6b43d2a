package handlers

import (
	"net/http"
	"strings"

	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/api/dto"
)

// PlanHandler exposes the three plan-builder tools. Each endpoint returns
// the tool's JSON output unchanged: a discovery_plan document on success,
// an error payload when the build failed. Both are HTTP 200 since the
// payload is the contract and callers apply their own fallback rules.
type PlanHandler struct {
	Tools *agent.Toolbox
}

func (h *PlanHandler) Enriched(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.EnrichedPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	payload := h.Tools.EnrichedPlan(r.Context(), city, req.DishNames)
	writeRawJSON(w, r, http.StatusOK, payload)
}

func (h *PlanHandler) Budget(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.BudgetPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}
	if strings.TrimSpace(req.Budget) == "" {
		writeError(w, r, http.StatusBadRequest, "budget is required")
		return
	}

	payload := h.Tools.BudgetPlan(r.Context(), city, req.DishNames, req.Budget)
	writeRawJSON(w, r, http.StatusOK, payload)
}

func (h *PlanHandler) Interest(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.InterestPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}
	if strings.TrimSpace(req.Interest) == "" {
		writeError(w, r, http.StatusBadRequest, "interest is required")
		return
	}

	payload := h.Tools.InterestPlan(r.Context(), city, req.DishNames, req.Interest)
	writeRawJSON(w, r, http.StatusOK, payload)
}
