package agent

import "testing"

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		wantKind PlanKind
		wantArg  string
	}{
		{"plain request", "a plan for Rome", PlanEnriched, ""},
		{"cheap", "a cheap plan for Rome", PlanBudget, "a cheap plan for Rome"},
		{"affordable", "something affordable in Lisbon", PlanBudget, "something affordable in Lisbon"},
		{"luxury", "luxury getaway to Dubai", PlanBudget, "luxury getaway to Dubai"},
		{"expensive", "an expensive weekend in Paris", PlanBudget, "an expensive weekend in Paris"},
		{"interested in", "I'm interested in street art in Berlin", PlanInterest, "street art"},
		{"love phrasing", "we love museums, plan Vienna for us", PlanInterest, "museums"},
		{"bare topic", "a nightlife plan for Madrid", PlanInterest, "nightlife"},
		{"budget beats interest", "cheap museums in Amsterdam", PlanBudget, "cheap museums in Amsterdam"},
		{"topic inside word ignored", "visit Artington", PlanEnriched, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.query)
			if d.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", d.Kind, tc.wantKind)
			}

			got := d.Budget
			if tc.wantKind == PlanInterest {
				got = d.Interest
			}
			if tc.wantKind != PlanEnriched && got != tc.wantArg {
				t.Fatalf("arg = %q, want %q", got, tc.wantArg)
			}
		})
	}
}

func TestPlanKindTool(t *testing.T) {
	if PlanEnriched.Tool() != ToolEnrichedPlan {
		t.Fatalf("enriched tool = %q", PlanEnriched.Tool())
	}
	if PlanBudget.Tool() != ToolBudgetPlan {
		t.Fatalf("budget tool = %q", PlanBudget.Tool())
	}
	if PlanInterest.Tool() != ToolInterestPlan {
		t.Fatalf("interest tool = %q", PlanInterest.Tool())
	}
}
