package handlers

import (
	"net/http"
	"strings"

	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/api/dto"
)

// DishHandler exposes the traditional-dish lookup tool.
type DishHandler struct {
	Tools *agent.Toolbox
}

func (h *DishHandler) Find(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.DishRequest
	if !decodeBody(w, r, &req) {
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	payload := h.Tools.FindDishes(r.Context(), city)
	if agent.IsErrorPayload(payload) {
		// Error payloads are data for the calling agent, not transport errors.
		writeRawJSON(w, r, http.StatusOK, payload)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DishResponse{Dishes: payload})
}
