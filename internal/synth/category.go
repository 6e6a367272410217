package synth

import "strings"

// Category is the proposal family a transcript is classified into.
// The zero value is CategoryGeneral, the fallback for unmatched transcripts.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryAI
	CategoryMobile
	CategoryEnterprise
	CategoryWeb

	numCategories
)

// categoryNames are indexed by Category. The length assertions below make the
// build fail when a category is added without a name.
var categoryNames = [...]string{
	CategoryGeneral:    "GENERAL",
	CategoryAI:         "AI",
	CategoryMobile:     "MOBILE",
	CategoryEnterprise: "ENTERPRISE",
	CategoryWeb:        "WEB",
}

var (
	_ [len(categoryNames) - int(numCategories)]struct{}
	_ [int(numCategories) - len(categoryNames)]struct{}
)

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the upper-case category name, e.g. "AI".
func (c Category) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// Slug returns the lower-case name used for template lookup, e.g. "ai".
func (c Category) Slug() string {
	return strings.ToLower(c.String())
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, bool) {
	for c := Category(0); c < numCategories; c++ {
		if strings.EqualFold(categoryNames[c], name) {
			return c, true
		}
	}
	return CategoryGeneral, false
}

// classificationRule pairs a category with the keywords that select it.
type classificationRule struct {
	category Category
	keywords []string
}

// classificationRules are tested in order; the first rule with any keyword
// present wins. The keyword sets are disjoint, the order still matters because
// a transcript may hit several sets ("ai chatbot app" is AI, not MOBILE).
var classificationRules = [...]classificationRule{
	{CategoryAI, []string{"ai", "chatbot", "gpt", "llm", "intelligence", "rag"}},
	{CategoryMobile, []string{"app", "mobile", "ios", "android"}},
	{CategoryEnterprise, []string{"crm", "erp", "enterprise", "system"}},
	{CategoryWeb, []string{"web", "website", "scraping"}},
}

// Classify maps a transcript to exactly one category. Matching is a
// case-insensitive substring test, so "Maintain" matches the "ai" keyword.
// Classification is total: any input, including "", yields a category.
func Classify(transcript string) Category {
	lower := strings.ToLower(transcript)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
