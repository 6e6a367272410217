package layout

import "errors"

// Sentinel errors for layout.
var (
	// ErrInvariant indicates the engine was configured or fed in a way that
	// cannot produce a well-formed page, such as a zero-sized frame.
	ErrInvariant = errors.New("layout invariant violated")

	// ErrLimit indicates the story would exceed the configured page budget.
	ErrLimit = errors.New("layout limit exceeded")
)
