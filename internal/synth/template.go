package synth

import (
	"errors"
	"fmt"
	"strings"
)

// Template placeholders. Substitution is a single textual pass, so a fact
// that happens to contain placeholder text is never expanded again.
const (
	PlaceholderVoiceID  = "{voice_id}"
	PlaceholderBudget   = "{budget}"
	PlaceholderTimeline = "{timeline}"
	PlaceholderDate     = "{date}"
)

// DateLayout formats the proposal date as "Month DD, YYYY".
const DateLayout = "January 02, 2006"

// Sentinel errors for template handling.
var (
	ErrTemplateMissing = errors.New("proposal template missing")
	ErrInvalidTemplate = errors.New("invalid proposal template")
)

// TemplateLoader supplies the raw markdown template for a category slug
// ("ai", "mobile", ...).
type TemplateLoader interface {
	LoadProposal(name string) (string, error)
}

// fillFields holds the values substituted into a template.
type fillFields struct {
	VoiceID  string
	Budget   string
	Timeline string
	Date     string
}

// fill substitutes placeholders in tmpl.
func fill(tmpl string, f fillFields) string {
	r := strings.NewReplacer(
		PlaceholderVoiceID, f.VoiceID,
		PlaceholderBudget, f.Budget,
		PlaceholderTimeline, f.Timeline,
		PlaceholderDate, f.Date,
	)
	return r.Replace(tmpl)
}

// ValidateTemplate checks that a template opens with a level-1 heading.
// Blank lines before the heading are allowed.
func ValidateTemplate(tmpl string) error {
	title := TemplateTitle(tmpl)
	if title == "" {
		return fmt.Errorf("%w: first non-blank line must be a \"# \" heading", ErrInvalidTemplate)
	}
	return nil
}

// TemplateTitle returns the text of the opening "# " heading, or "" when the
// first non-blank line is something else.
func TemplateTitle(tmpl string) string {
	for _, line := range strings.Split(tmpl, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
		return ""
	}
	return ""
}
