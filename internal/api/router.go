package api

import (
	"net/http"

	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(tools *agent.Toolbox, planner *agent.Agent) http.Handler {
	mux := http.NewServeMux()

	dishHandler := &handlers.DishHandler{Tools: tools}
	planHandler := &handlers.PlanHandler{Tools: tools}
	chatHandler := &handlers.ChatHandler{Agent: planner}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/dishes", dishHandler.Find)
	mux.HandleFunc("/plans/enriched", planHandler.Enriched)
	mux.HandleFunc("/plans/budget", planHandler.Budget)
	mux.HandleFunc("/plans/interest", planHandler.Interest)
	mux.HandleFunc("/chat", chatHandler.Chat)

	return requestIDMiddleware(loggingMiddleware(mux))
}
