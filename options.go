package proposal

import (
	"time"

	"github.com/alnah/go-proposal/internal/layout"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout      time.Duration
	assetPath    string
	style        string
	date         string
	defaultName  string
	maxLines     int
	maxPages     int
	compression  int
	creationTime time.Time
	now          func() time.Time
	brand        layout.Brand
	cover        Cover
	team         Team
}

// Defaults.
const (
	defaultTimeout  = 30 * time.Second
	DefaultMaxLines = 10_000
	DefaultMaxPages = layout.DefaultMaxPages
	DefaultDate     = "auto"
)

// WithTimeout sets the generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("proposal: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithAssetPath sets a directory whose proposals/, styles/ and templates/
// files override the embedded ones. Missing files fall back to the embedded
// assets.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset source. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithStyle selects the stylesheet for the HTML preview by name.
func WithStyle(name string) Option {
	return func(g *Generator) {
		g.cfg.style = name
	}
}

// WithDate sets the default cover date: a literal value, "auto" or
// "auto:FORMAT". Input.Date overrides it per call.
func WithDate(value string) Option {
	return func(g *Generator) {
		g.cfg.date = value
	}
}

// WithDefaultClientName sets the cover client name used when Input names
// none.
func WithDefaultClientName(name string) Option {
	return func(g *Generator) {
		g.cfg.defaultName = name
	}
}

// WithMaxLines bounds the number of markdown lines accepted by Render.
// Values <= 0 keep DefaultMaxLines.
func WithMaxLines(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.cfg.maxLines = n
		}
	}
}

// WithMaxPages bounds the number of pages a document may take.
// Values <= 0 keep DefaultMaxPages.
func WithMaxPages(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.cfg.maxPages = n
		}
	}
}

// WithCompression sets the zlib level for PDF content streams; 0 writes
// them uncompressed.
func WithCompression(level int) Option {
	return func(g *Generator) {
		g.cfg.compression = level
	}
}

// WithCreationTime stamps generated PDFs with t. Without it the PDF carries
// no creation date and identical input gives identical bytes.
func WithCreationTime(t time.Time) Option {
	return func(g *Generator) {
		g.cfg.creationTime = t
	}
}

// WithClock replaces time.Now for the proposal date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.cfg.now = now
	}
}

// WithBrand overrides the agency identity. Empty fields keep the built-in
// values.
func WithBrand(b Brand) Option {
	return func(g *Generator) {
		if b.Name != "" {
			g.cfg.brand.Name = b.Name
		}
		if b.Tagline != "" {
			g.cfg.brand.Tagline = b.Tagline
		}
		if b.PresentedBy != "" {
			g.cfg.brand.PresentedBy = b.PresentedBy
		}
		if b.FooterURL != "" {
			g.cfg.brand.FooterURL = b.FooterURL
		}
	}
}

// WithCover overrides the cover text. Empty fields keep the built-in text.
func WithCover(c Cover) Option {
	return func(g *Generator) {
		g.cfg.cover = c
	}
}

// WithTeam overrides the closing team section. Empty fields keep the
// built-in team.
func WithTeam(t Team) Option {
	return func(g *Generator) {
		g.cfg.team = t
	}
}
