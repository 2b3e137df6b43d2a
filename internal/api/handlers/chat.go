package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/api/dto"
)

// AgentRunner runs the discovery pipeline for a free-text query.
type AgentRunner interface {
	Run(ctx context.Context, query string) (*agent.Result, error)
}

// ChatHandler runs the full agent pipeline for a free-text query.
type ChatHandler struct {
	Agent AgentRunner
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, r, http.StatusBadRequest, "query is required")
		return
	}

	res, err := h.Agent.Run(r.Context(), req.Query)
	if err != nil {
		log.Printf("agent run failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := dto.ChatResponse{Markdown: res.Markdown}
	if res.PlanJSON != "" {
		// The tool payload wraps the plan under a discovery_plan key;
		// unwrap it so the response carries the plan document itself.
		var doc struct {
			DiscoveryPlan json.RawMessage `json:"discovery_plan"`
		}
		if err := json.Unmarshal([]byte(res.PlanJSON), &doc); err != nil {
			log.Printf("decode plan payload failed: %v", err)
		} else {
			out.DiscoveryPlan = doc.DiscoveryPlan
		}
	}

	writeJSON(w, r, http.StatusOK, out)
}
