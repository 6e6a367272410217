package proposal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alnah/go-proposal/internal/layout"
	"github.com/alnah/go-proposal/internal/pdfwriter"
	"github.com/alnah/go-proposal/internal/pipeline"
	"github.com/alnah/go-proposal/internal/synth"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.HeaderInjector       = (*pipeline.HeaderInjection)(nil)
	_ synth.TemplateLoader          = (AssetLoader)(nil)
)

// Generator orchestrates the transcript-to-proposal pipeline: synthesis,
// layout and PDF serialization, plus the HTML preview. It holds only
// immutable state after NewGenerator and is safe for concurrent use.
type Generator struct {
	cfg            generatorConfig
	loader         AssetLoader
	synth          *synth.Synthesizer
	cover          pipeline.CoverContent
	team           pipeline.TeamSection
	engine         *layout.Engine
	writer         *pdfwriter.Writer
	css            string
	preprocessor   pipeline.MarkdownPreprocessor
	htmlConverter  pipeline.HTMLConverter
	cssInjector    pipeline.CSSInjector
	headerInjector pipeline.HeaderInjector
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithAssetPath, WithBrand, WithTeam).
// Returns error if asset loading or template validation fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:     defaultTimeout,
			style:       DefaultStyle,
			date:        DefaultDate,
			defaultName: DefaultClientName,
			maxLines:    DefaultMaxLines,
			maxPages:    DefaultMaxPages,
			compression: pdfwriter.DefaultCompression,
			now:         time.Now,
			brand:       layout.DefaultBrand,
		},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := validateDate(g.cfg.date); err != nil {
		return nil, err
	}
	if len(g.cfg.defaultName) > MaxClientNameLength {
		return nil, fmt.Errorf("%w: default name has %d chars (max %d)", ErrInvalidClientName, len(g.cfg.defaultName), MaxClientNameLength)
	}
	if err := g.cfg.team.Validate(); err != nil {
		return nil, err
	}

	if g.loader == nil {
		loader, err := NewAssetLoader(g.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		g.loader = loader
	}

	s, err := synth.New(g.loader)
	if err != nil {
		return nil, convertSynthError(err)
	}
	g.synth = s

	g.css, err = g.loader.LoadStyle(g.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", g.cfg.style, err)
	}

	if g.headerInjector == nil {
		header, err := g.loader.LoadTemplate(DefaultHeaderTemplate)
		if err != nil {
			return nil, fmt.Errorf("loading header template: %w", err)
		}
		g.headerInjector, err = pipeline.NewHeaderInjection(header)
		if err != nil {
			return nil, fmt.Errorf("initializing header injector: %w", err)
		}
	}

	g.cover = toCoverContent(g.cfg.cover)
	g.team = toTeamSection(g.cfg.team)
	g.engine = layout.NewEngine(layout.WithMaxPages(g.cfg.maxPages))
	g.writer = pdfwriter.New(pdfwriter.WithCompression(g.cfg.compression))

	return g, nil
}

// Generate synthesizes a proposal from input.Transcript and renders it.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	now := g.cfg.now()
	doc := g.synth.Synthesize(input.Transcript, input.VoiceID, now)

	dateSetting := input.Date
	if dateSetting == "" {
		dateSetting = g.cfg.date
	}
	date, err := ResolveDate(dateSetting, now)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Document: doc,
		Meta:     Meta{Date: date, ClientName: g.clientName(input.ClientName)},
	}

	if input.HTML {
		html, err := g.ToHTML(ctx, doc.Markdown, res.Meta)
		if err != nil {
			return nil, err
		}
		res.HTML = []byte(html)
	}

	if input.SkipPDF {
		return res, nil
	}

	pdf, pages, err := g.render(ctx, doc.Markdown, res.Meta)
	if err != nil {
		return nil, err
	}
	res.PDF = pdf
	res.Pages = pages
	return res, nil
}

// Synthesize fills the category template for a transcript, dated now.
// It never fails.
func (g *Generator) Synthesize(transcript, voiceID string) Document {
	return g.synth.Synthesize(transcript, voiceID, g.cfg.now())
}

// Render lays out proposal markdown on the Cover and Content templates and
// serializes it to PDF. meta.Date is printed as given.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Render(ctx context.Context, markdown string, meta Meta) (pdf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			pdf = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	pdf, _, err = g.render(ctx, markdown, meta)
	return pdf, err
}

func (g *Generator) render(ctx context.Context, markdown string, meta Meta) ([]byte, int, error) {
	pages, err := g.layoutPages(ctx, markdown, meta)
	if err != nil {
		return nil, 0, err
	}

	title := pipeline.Title(markdown)
	if title == "" {
		title = pipeline.DefaultTitle
	}
	pdf, err := g.writer.Write(pages, pdfwriter.Info{
		Title:        title,
		Author:       g.cfg.brand.PresentedBy,
		Subject:      "Prepared for " + g.clientName(meta.ClientName),
		CreationDate: g.cfg.creationTime,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return pdf, len(pages), nil
}

// layoutPages parses markdown and flows it onto pages.
func (g *Generator) layoutPages(ctx context.Context, markdown string, meta Meta) ([]layout.Page, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if n := pipeline.CountLines(markdown); n > g.cfg.maxLines {
		return nil, fmt.Errorf("%w: %w: %d lines (max %d)", ErrRender, ErrLayoutLimit, n, g.cfg.maxLines)
	}

	story := pipeline.BuildStory(pipeline.Parse(markdown), g.cover, g.team)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, err := g.engine.Layout(story, layout.Meta{
		Date:       meta.Date,
		ClientName: g.clientName(meta.ClientName),
		Brand:      g.cfg.brand,
	})
	if err != nil {
		return nil, convertLayoutError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// ToHTML converts proposal markdown to a standalone HTML page with the
// preview stylesheet and brand header.
func (g *Generator) ToHTML(ctx context.Context, markdown string, meta Meta) (string, error) {
	md := g.preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err := g.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	html = g.cssInjector.InjectCSS(ctx, html, g.css)
	html, err = g.headerInjector.InjectHeader(ctx, html, &pipeline.HeaderData{
		BrandLine1: g.cfg.brand.Name,
		BrandLine2: g.cfg.brand.Tagline,
		ClientName: g.clientName(meta.ClientName),
		Date:       meta.Date,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return html, nil
}

func (g *Generator) clientName(name string) string {
	if name != "" {
		return name
	}
	return g.cfg.defaultName
}

// convertLayoutError wraps layout failures in ErrRender and the matching
// public sentinel.
func convertLayoutError(err error) error {
	switch {
	case errors.Is(err, layout.ErrLimit):
		return fmt.Errorf("%w: %w: %v", ErrRender, ErrLayoutLimit, err)
	case errors.Is(err, layout.ErrInvariant):
		return fmt.Errorf("%w: %w: %v", ErrRender, ErrLayoutInvariant, err)
	default:
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
}

// convertSynthError maps template loading failures to public sentinels.
func convertSynthError(err error) error {
	switch {
	case errors.Is(err, synth.ErrInvalidTemplate):
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, synth.ErrTemplateMissing):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	default:
		return err
	}
}

func toCoverContent(c Cover) pipeline.CoverContent {
	out := pipeline.DefaultCover
	if len(c.TitleLines) > 0 {
		out.TitleLines = append([]string(nil), c.TitleLines...)
	}
	if c.Subtitle != "" {
		out.Subtitle = c.Subtitle
	}
	return out
}

func toTeamSection(t Team) pipeline.TeamSection {
	out := pipeline.DefaultTeam
	if t.Heading != "" {
		out.Heading = t.Heading
	}
	if t.Intro != "" {
		out.Intro = t.Intro
	}
	if len(t.Members) > 0 {
		out.Members = make([]pipeline.TeamMember, len(t.Members))
		for i, m := range t.Members {
			out.Members[i] = pipeline.TeamMember(m)
		}
	}
	return out
}

// defaultGenerator backs the package-level Render.
var defaultGenerator = sync.OnceValues(func() (*Generator, error) {
	return NewGenerator()
})

// Render renders proposal markdown with the built-in templates.
func Render(markdown string, meta Meta) ([]byte, error) {
	g, err := defaultGenerator()
	if err != nil {
		return nil, err
	}
	return g.Render(context.Background(), markdown, meta)
}

// Synthesize fills the built-in template for a transcript, dated now.
func Synthesize(transcript, voiceID string) Document {
	return synth.Synthesize(transcript, voiceID, time.Now())
}
