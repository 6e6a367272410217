package layout

import "fmt"

// DefaultMaxPages bounds the output of a single layout.
const DefaultMaxPages = 200

// epsilon absorbs float rounding when testing whether content fits.
const epsilon = 1e-6

// Page is one laid-out page. Number is the 1-based index among pages that
// use the same template, so the first Content page is 1 whatever the number
// of cover pages.
type Page struct {
	Template TemplateKind
	Number   int
	Width    float64
	Height   float64
	Commands []Command
}

// Texts returns the text of every text command on the page, in draw order.
func (p Page) Texts() []string {
	var out []string
	for _, c := range p.Commands {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxPages sets the page budget.
func WithMaxPages(n int) Option {
	return func(e *Engine) {
		e.maxPages = n
	}
}

// WithMargins rebuilds both default templates for the given margins.
func WithMargins(m Margins) Option {
	return func(e *Engine) {
		e.templates = DefaultTemplates(m)
	}
}

// WithTemplate replaces a single template.
func WithTemplate(kind TemplateKind, t PageTemplate) Option {
	return func(e *Engine) {
		if kind >= 0 && kind < numTemplates {
			e.templates[kind] = t
		}
	}
}

// Engine lays out stories. It holds only configuration and is safe for
// concurrent use.
type Engine struct {
	templates [numTemplates]PageTemplate
	maxPages  int
}

// NewEngine creates an Engine with A4 default templates.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		templates: DefaultTemplates(DefaultMargins),
		maxPages:  DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Template returns the template for kind.
func (e *Engine) Template(kind TemplateKind) PageTemplate {
	if kind < 0 || kind >= numTemplates {
		return PageTemplate{}
	}
	return e.templates[kind]
}

// Layout flows story onto pages. The first page uses the Cover template.
// It returns ErrInvariant when the configuration or content can never fit,
// and ErrLimit when the page budget is exhausted. No pages are returned on
// error.
func (e *Engine) Layout(story Story, meta Meta) ([]Page, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	f := &flow{engine: e, meta: meta, next: TemplateCover}
	for i, el := range story {
		var err error
		switch el := el.(type) {
		case Paragraph:
			err = f.paragraph(el)
		case Spacer:
			err = f.spacer(el)
		case Table:
			err = f.table(el)
		case PageBreak:
			f.open = false
		case NextTemplate:
			err = f.setNext(el.Kind)
		default:
			err = fmt.Errorf("%w: story element %d has unsupported type %T", ErrInvariant, i, el)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(f.pages) == 0 {
		if err := f.openPage(); err != nil {
			return nil, err
		}
	}

	return f.pages, nil
}

func (e *Engine) validate() error {
	if e.maxPages <= 0 {
		return fmt.Errorf("%w: page budget must be positive, got %d", ErrInvariant, e.maxPages)
	}
	for k, t := range e.templates {
		if t.Frame.Empty() {
			return fmt.Errorf("%w: %s frame has no area (%.1fx%.1f)",
				ErrInvariant, TemplateKind(k), t.Frame.W, t.Frame.H)
		}
	}
	for r, st := range styles {
		if !st.valid() {
			return fmt.Errorf("%w: style %d has non-positive metrics", ErrInvariant, r)
		}
	}
	return nil
}

// flow is the mutable state of one Layout call.
type flow struct {
	engine *Engine
	meta   Meta

	next   TemplateKind
	counts [numTemplates]int
	pages  []Page

	open  bool
	frame Rect
	y     float64 // top of the free space in the current frame
	atTop bool
}

func (f *flow) setNext(kind TemplateKind) error {
	if kind < 0 || kind >= numTemplates {
		return fmt.Errorf("%w: unknown template %d", ErrInvariant, kind)
	}
	f.next = kind
	return nil
}

func (f *flow) ensurePage() error {
	if f.open {
		return nil
	}
	return f.openPage()
}

func (f *flow) openPage() error {
	if len(f.pages) >= f.engine.maxPages {
		return fmt.Errorf("%w: more than %d pages", ErrLimit, f.engine.maxPages)
	}

	kind := f.next
	f.counts[kind]++
	number := f.counts[kind]
	t := f.engine.templates[kind]

	var cmds []Command
	if t.Background != nil {
		cmds = append(cmds, t.Background(number, f.meta)...)
	}
	f.pages = append(f.pages, Page{
		Template: kind,
		Number:   number,
		Width:    PageWidth,
		Height:   PageHeight,
		Commands: cmds,
	})

	f.open = true
	f.frame = t.Frame
	f.y = t.Frame.Top()
	f.atTop = true
	return nil
}

func (f *flow) emit(cmds ...Command) {
	p := &f.pages[len(f.pages)-1]
	p.Commands = append(p.Commands, cmds...)
}

func (f *flow) available() float64 {
	return f.y - f.frame.Y
}

func (f *flow) paragraph(p Paragraph) error {
	st := StyleOf(p.Role)
	if err := f.ensurePage(); err != nil {
		return err
	}

	var pad float64
	if st.HasBackground {
		pad = st.Padding
	}
	width := f.frame.W - 2*pad
	if width <= 0 {
		return fmt.Errorf("%w: padding %.1f leaves no room in a %.1fpt frame", ErrInvariant, pad, f.frame.W)
	}

	lines := Wrap(p.Runs, st, width)
	continued := false
	for len(lines) > 0 {
		if err := f.ensurePage(); err != nil {
			return err
		}

		before := st.SpaceBefore
		if f.atTop || continued {
			before = 0
		}
		n := int((f.available() - before - 2*pad + epsilon) / st.Leading)
		if n <= 0 {
			if f.atTop {
				return fmt.Errorf("%w: a %.1fpt line does not fit an empty %.1fpt frame",
					ErrInvariant, st.Leading+2*pad, f.frame.H)
			}
			f.open = false
			continue
		}
		n = min(n, len(lines))

		top := f.y - before
		f.drawLines(st, lines[:n], top, pad)
		f.y = top - float64(n)*st.Leading - 2*pad
		f.atTop = false

		lines = lines[n:]
		if len(lines) > 0 {
			f.open = false
			continued = true
		}
	}

	f.y -= st.SpaceAfter
	return nil
}

func (f *flow) drawLines(st Style, lines []Line, top, pad float64) {
	if st.HasBackground {
		h := float64(len(lines))*st.Leading + 2*pad
		f.emit(FillRect(st.Background, Rect{X: f.frame.X, Y: top - h, W: f.frame.W, H: h}))
	}
	for i, line := range lines {
		lineTop := top - pad - float64(i)*st.Leading
		f.drawRuns(st, line.Runs, f.frame.X+pad, baseline(st, lineTop))
	}
}

func (f *flow) drawRuns(st Style, runs []Run, x, y float64) {
	for _, r := range runs {
		font := st.font(r.Bold)
		f.emit(Text(font, st.Size, st.Color, x, y, r.Text))
		x += font.Width(r.Text, st.Size)
	}
}

// baseline centres the glyph box of a line within its leading.
func baseline(st Style, lineTop float64) float64 {
	return lineTop - (st.Leading-st.Size)/2 - 0.8*st.Size
}

func (f *flow) spacer(s Spacer) error {
	if s.Height < 0 {
		return fmt.Errorf("%w: negative spacer height %.1f", ErrInvariant, s.Height)
	}
	if err := f.ensurePage(); err != nil {
		return err
	}
	if f.available()-s.Height < -epsilon {
		f.open = false
		return nil
	}
	f.y -= s.Height
	f.atTop = false
	return nil
}

func (f *flow) table(t Table) error {
	var cols int
	for _, row := range t.Rows {
		cols = max(cols, len(row.Cells))
	}
	if cols == 0 {
		return nil
	}
	inner := t.ColumnWidth - 2*t.PadX
	if inner <= 0 {
		return fmt.Errorf("%w: table column width %.1f leaves no room for text", ErrInvariant, t.ColumnWidth)
	}

	for _, row := range t.Rows {
		st := StyleOf(row.Role)
		cells := make([][]Line, len(row.Cells))
		lineCount := 1
		for i, cell := range row.Cells {
			cells[i] = Wrap([]Run{{Text: cell}}, st, inner)
			lineCount = max(lineCount, len(cells[i]))
		}
		h := t.PadTop + float64(lineCount)*st.Leading + t.PadBottom

		for {
			if err := f.ensurePage(); err != nil {
				return err
			}
			if f.available()-h >= -epsilon {
				break
			}
			if f.atTop {
				return fmt.Errorf("%w: a %.1fpt table row does not fit an empty %.1fpt frame",
					ErrInvariant, h, f.frame.H)
			}
			f.open = false
		}

		x0 := f.frame.X
		if tw := float64(cols) * t.ColumnWidth; tw < f.frame.W {
			x0 += (f.frame.W - tw) / 2
		}
		for c, lines := range cells {
			for i, line := range lines {
				lineTop := f.y - t.PadTop - float64(i)*st.Leading
				f.drawRuns(st, line.Runs, x0+float64(c)*t.ColumnWidth+t.PadX, baseline(st, lineTop))
			}
		}
		f.y -= h
		f.atTop = false
	}
	return nil
}
