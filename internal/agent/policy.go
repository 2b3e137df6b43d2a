package agent

import (
	"regexp"
	"strings"
)

// PlanKind selects which builder the agent runs for a query.
type PlanKind int

const (
	PlanEnriched PlanKind = iota
	PlanBudget
	PlanInterest
)

func (k PlanKind) Tool() string {
	switch k {
	case PlanBudget:
		return ToolBudgetPlan
	case PlanInterest:
		return ToolInterestPlan
	default:
		return ToolEnrichedPlan
	}
}

// Decision is the outcome of the tool-selection policy for one query.
type Decision struct {
	Kind     PlanKind
	Budget   string // full query text; the builder matches its own terms
	Interest string
}

var budgetTerms = []string{"cheap", "affordable", "budget", "luxury", "expensive"}

var interestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\binterested in ([a-z][a-z ]*?)(?:\s+in\b|[.,!?]|$)`),
	regexp.MustCompile(`(?i)\b(?:i |we )?love ([a-z][a-z ]*?)(?:\s+in\b|[.,!?]|$)`),
	regexp.MustCompile(`(?i)\bfocused on ([a-z][a-z ]*?)(?:\s+in\b|[.,!?]|$)`),
}

// Ordered longest-first so "street art" wins over "art".
var interestTopics = []string{
	"street art", "architecture", "nightlife", "museums",
	"shopping", "history", "nature", "music", "art",
}

// Decide applies a fixed rule table to a user query: budget wording selects
// the budget plan, a stated interest selects the interest plan, anything
// else falls through to the enriched plan. Budget wins when both appear,
// mirroring the priority order the tools were designed around.
func Decide(query string) Decision {
	lower := strings.ToLower(query)

	for _, term := range budgetTerms {
		if strings.Contains(lower, term) {
			return Decision{Kind: PlanBudget, Budget: query}
		}
	}

	for _, pat := range interestPatterns {
		if m := pat.FindStringSubmatch(query); m != nil {
			return Decision{Kind: PlanInterest, Interest: strings.TrimSpace(m[1])}
		}
	}

	// Bare topic mentions ("a street art plan for Berlin").
	for _, topic := range interestTopics {
		if containsWord(lower, topic) {
			return Decision{Kind: PlanInterest, Interest: topic}
		}
	}

	return Decision{Kind: PlanEnriched}
}

func containsWord(haystack, word string) bool {
	for offset := 0; ; {
		idx := strings.Index(haystack[offset:], word)
		if idx < 0 {
			return false
		}
		idx += offset

		before := idx == 0 || !isLetter(haystack[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(haystack) || !isLetter(haystack[afterIdx])
		if before && after {
			return true
		}
		offset = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
