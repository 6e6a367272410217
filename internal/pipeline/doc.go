// Package pipeline turns proposal markdown into the inputs of the two
// renderers.
//
// For the PDF path it parses the markdown subset the proposals use (three
// heading levels, bullets, bold spans, blank lines) into Blocks and builds
// the layout Story around them: cover content, the explicit switch to the
// Content template, the body, and the trailing team section.
//
// For the HTML preview it preprocesses the markdown, converts it with
// Goldmark, and injects the preview stylesheet and header.
package pipeline
