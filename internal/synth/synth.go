package synth

import (
	"fmt"
	"time"

	"github.com/alnah/go-proposal/internal/assets"
)

// Document is the synthesized proposal for one transcript.
type Document struct {
	Category Category
	Facts    Facts
	VoiceID  string
	Date     string
	Markdown string

	// Fallback markers. They never surface as errors; callers may log them.
	BudgetFallback   bool
	TimelineFallback bool
}

// CategoryFallback reports whether classification fell through to GENERAL.
func (d Document) CategoryFallback() bool {
	return d.Category == CategoryGeneral
}

// Title returns the proposal title taken from the opening heading.
func (d Document) Title() string {
	return TemplateTitle(d.Markdown)
}

// Synthesizer fills category templates. It is immutable after construction
// and safe for concurrent use.
type Synthesizer struct {
	templates [numCategories]string
}

// New loads and validates one template per category from loader.
func New(loader TemplateLoader) (*Synthesizer, error) {
	s := &Synthesizer{}
	for _, c := range Categories() {
		tmpl, err := loader.LoadProposal(c.Slug())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateMissing, c.Slug(), err)
		}
		if err := ValidateTemplate(tmpl); err != nil {
			return nil, fmt.Errorf("template %s: %w", c.Slug(), err)
		}
		s.templates[c] = tmpl
	}
	return s, nil
}

// defaultSynthesizer uses the embedded templates. A failure here means the
// binary was built with broken assets.
var defaultSynthesizer = func() *Synthesizer {
	s, err := New(assets.NewEmbeddedLoader())
	if err != nil {
		panic("synth: embedded templates: " + err.Error())
	}
	return s
}()

// Default returns the Synthesizer backed by the embedded templates.
func Default() *Synthesizer {
	return defaultSynthesizer
}

// Template returns the raw template for a category.
func (s *Synthesizer) Template(c Category) string {
	if !c.Valid() {
		c = CategoryGeneral
	}
	return s.templates[c]
}

// Synthesize classifies the transcript, extracts its facts and fills the
// category template. now is sampled once by the caller and only used for the
// proposal date. It never fails.
func (s *Synthesizer) Synthesize(transcript, voiceID string, now time.Time) Document {
	facts := ExtractFacts(transcript)
	category := Classify(transcript)
	date := now.Format(DateLayout)

	md := fill(s.templates[category], fillFields{
		VoiceID:  voiceID,
		Budget:   facts.Budget,
		Timeline: facts.Timeline,
		Date:     date,
	})

	return Document{
		Category:         category,
		Facts:            facts,
		VoiceID:          voiceID,
		Date:             date,
		Markdown:         md,
		BudgetFallback:   facts.Budget == BudgetFallback,
		TimelineFallback: facts.Timeline == TimelineFallback,
	}
}

// Synthesize runs the default Synthesizer.
func Synthesize(transcript, voiceID string, now time.Time) Document {
	return defaultSynthesizer.Synthesize(transcript, voiceID, now)
}
