package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-discovery-service/internal/agent"
)

// stubRunner returns a canned agent result.
type stubRunner struct {
	result *agent.Result
	err    error
}

func (s *stubRunner) Run(ctx context.Context, query string) (*agent.Result, error) {
	return s.result, s.err
}

func TestChatResponseShape(t *testing.T) {
	planJSON := `{"discovery_plan":{"location":"Rome"}}`
	h := &ChatHandler{Agent: &stubRunner{
		result: &agent.Result{Markdown: "# Your Rome Itinerary", PlanJSON: planJSON},
	}}

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"plan a trip to Rome"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Markdown      string          `json:"markdown"`
		DiscoveryPlan json.RawMessage `json:"discovery_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Markdown != "# Your Rome Itinerary" {
		t.Fatalf("markdown = %q", body.Markdown)
	}

	// discovery_plan holds the plan document itself, not the tool wrapper.
	if strings.Contains(string(body.DiscoveryPlan), `"discovery_plan"`) {
		t.Fatalf("plan document is nested twice: %s", body.DiscoveryPlan)
	}
	var plan struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal(body.DiscoveryPlan, &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.Location != "Rome" {
		t.Fatalf("location = %q, want Rome", plan.Location)
	}
}

func TestChatWithoutPlanOmitsDocument(t *testing.T) {
	h := &ChatHandler{Agent: &stubRunner{
		result: &agent.Result{Markdown: "'Xyzzyplonk12345' could not be found on the map."},
	}}

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"plan Xyzzyplonk12345"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "discovery_plan") {
		t.Fatalf("body should omit discovery_plan: %s", rec.Body.String())
	}
}

func TestChatRejectsEmptyQuery(t *testing.T) {
	h := &ChatHandler{Agent: &stubRunner{result: &agent.Result{}}}

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"  "}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
