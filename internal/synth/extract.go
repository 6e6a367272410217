package synth

import (
	"regexp"
	"strings"
)

// Fallback values used when a transcript carries no recognizable fact.
const (
	BudgetFallback   = "To be determined based on final scope discovery"
	TimelineFallback = "4-8 weeks (Standard estimation)"
)

// Precompiled patterns.
var (
	// A dollar amount with optional thousands groups and k/m suffix.
	// The currency marker is matched case-sensitively; "$20k" and "$1,500"
	// match, "$" alone does not.
	budgetPattern = regexp.MustCompile(`\$\d+(?:,\d+)*(?:k|K|m|M)?`)

	// A duration such as "3 months" or "10 weeks".
	durationPattern = regexp.MustCompile(`(?i)\d+\s+(?:weeks?|months?)`)
)

// quarterTokens are checked in order after the duration pattern.
var quarterTokens = [...]struct {
	token, label string
}{
	{"q1", "Q1 Delivery"},
	{"q2", "Q2 Delivery"},
	{"q3", "Q3 Delivery"},
	{"q4", "Q4 Delivery"},
}

// Facts are the budget and timeline extracted from a transcript.
type Facts struct {
	Budget   string
	Timeline string
}

// ExtractFacts derives both facts from a transcript.
func ExtractFacts(transcript string) Facts {
	return Facts{
		Budget:   ExtractBudget(transcript),
		Timeline: ExtractTimeline(transcript),
	}
}

// ExtractBudget returns the first dollar amount in the transcript, verbatim
// and including the "$", or BudgetFallback when there is none.
func ExtractBudget(transcript string) string {
	if m := budgetPattern.FindString(transcript); m != "" {
		return m
	}
	return BudgetFallback
}

// ExtractTimeline returns, in priority order: the first "<n> week(s)|month(s)"
// phrase as written, "Q<n> Delivery" for the first quarter token found
// (checked Q1 through Q4), or TimelineFallback.
func ExtractTimeline(transcript string) string {
	if m := durationPattern.FindString(transcript); m != "" {
		return m
	}
	lower := strings.ToLower(transcript)
	for _, q := range quarterTokens {
		if strings.Contains(lower, q.token) {
			return q.label
		}
	}
	return TimelineFallback
}
