package proposal

import (
	"fmt"
	"time"

	"github.com/alnah/go-proposal/internal/dateutil"
	"github.com/alnah/go-proposal/internal/synth"
)

// DefaultClientName is printed on the cover when no client is named.
const DefaultClientName = "Valued Client"

// Input length limits.
const (
	MaxVoiceIDLength    = 128
	MaxClientNameLength = 100
	MaxDateLength       = 60
)

// Category is the proposal category chosen from the transcript.
type Category = synth.Category

// Proposal categories. Classification tries AI, Mobile, Enterprise and Web
// in that order and falls back to General.
const (
	CategoryAI         = synth.CategoryAI
	CategoryMobile     = synth.CategoryMobile
	CategoryEnterprise = synth.CategoryEnterprise
	CategoryWeb        = synth.CategoryWeb
	CategoryGeneral    = synth.CategoryGeneral
)

// Facts are the budget and timeline found in a transcript.
type Facts = synth.Facts

// Document is a synthesized proposal: category, facts and filled markdown.
type Document = synth.Document

// Input contains generation parameters.
type Input struct {
	Transcript string // Call transcript; may be empty
	VoiceID    string // Voice recording identifier printed in the proposal
	ClientName string // Cover "PREPARED FOR" value (empty = DefaultClientName)

	// Date overrides the configured cover date. Accepts a literal value,
	// "auto" or "auto:FORMAT" (empty = generator default).
	Date string

	HTML    bool // Also render the HTML preview
	SkipPDF bool // Stop after synthesis (and HTML, if requested)
}

// Validate checks field lengths and the date syntax.
func (in Input) Validate() error {
	if len(in.VoiceID) > MaxVoiceIDLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidVoiceID, len(in.VoiceID), MaxVoiceIDLength)
	}
	if len(in.ClientName) > MaxClientNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidClientName, len(in.ClientName), MaxClientNameLength)
	}
	return validateDate(in.Date)
}

// Meta is the per-document data painted on page backgrounds.
type Meta struct {
	Date       string // Cover date, printed as is
	ClientName string // Cover "PREPARED FOR" value (empty = DefaultClientName)
}

// Validate checks field lengths.
func (m Meta) Validate() error {
	if len(m.ClientName) > MaxClientNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidClientName, len(m.ClientName), MaxClientNameLength)
	}
	if len(m.Date) > MaxDateLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidDate, len(m.Date), MaxDateLength)
	}
	return nil
}

// Result holds the outputs of one generation.
type Result struct {
	Document Document
	Meta     Meta
	HTML     []byte // nil unless Input.HTML
	PDF      []byte // nil when Input.SkipPDF
	Pages    int
}

// Brand is the agency identity painted on page backgrounds. Empty fields
// keep the built-in values.
type Brand struct {
	Name        string
	Tagline     string
	PresentedBy string
	FooterURL   string
}

// Cover is the text flowed into the cover frame.
type Cover struct {
	TitleLines []string
	Subtitle   string
}

// Team is the closing team section. Members is empty or has TeamSize
// entries.
type Team struct {
	Heading string
	Intro   string
	Members []TeamMember
}

// TeamSize is the number of columns in the team table.
const TeamSize = 3

// TeamMember is one column of the team table.
type TeamMember struct {
	Name string
	Role string
}

// Validate checks the member count.
func (t Team) Validate() error {
	if n := len(t.Members); n != 0 && n != TeamSize {
		return fmt.Errorf("%w: need %d members, got %d", ErrInvalidTeam, TeamSize, n)
	}
	return nil
}

// ResolveDate handles "auto" and "auto:FORMAT" date values; anything else
// is returned unchanged. "auto" formats like "March 05, 2026".
func ResolveDate(value string, t time.Time) (string, error) {
	s, err := dateutil.ResolveDate(value, t)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return s, nil
}

func validateDate(value string) error {
	if len(value) > MaxDateLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidDate, len(value), MaxDateLength)
	}
	_, err := ResolveDate(value, time.Time{})
	return err
}
