package proposal

import "errors"

// Sentinel errors for library operations.
var (
	// ErrRender wraps every failure while laying out or serializing a
	// document. No partial PDF is returned with it.
	ErrRender = errors.New("proposal rendering failed")

	// ErrLayoutInvariant indicates the page templates or styles cannot
	// produce a well-formed page. It is always wrapped in ErrRender.
	ErrLayoutInvariant = errors.New("layout invariant violated")

	// ErrLayoutLimit indicates the input exceeds the line or page budget.
	// It is always wrapped in ErrRender.
	ErrLayoutLimit = errors.New("layout limit exceeded")

	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Input validation errors.
	ErrInvalidVoiceID    = errors.New("invalid voice ID")
	ErrInvalidClientName = errors.New("invalid client name")
	ErrInvalidDate       = errors.New("invalid date")

	// Option validation errors.
	ErrInvalidTeam = errors.New("invalid team")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("proposal template not found")
	ErrInvalidTemplate  = errors.New("invalid proposal template")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
