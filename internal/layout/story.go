package layout

// Run is a span of text in one weight.
type Run struct {
	Text string
	Bold bool
}

// Element is one item of a Story. The set of implementations is closed.
type Element interface {
	element()
}

// Paragraph is flowed text in a fixed style. It may split across pages
// between lines.
type Paragraph struct {
	Role Role
	Runs []Run
}

// Spacer reserves vertical space. A spacer that does not fit ends the page
// and is not carried over.
type Spacer struct {
	Height float64
}

// Table is a grid of fixed-width text columns, centred in the frame. Rows
// never split across pages.
type Table struct {
	ColumnWidth float64
	Rows        []TableRow

	// Cell padding in points.
	PadTop, PadBottom, PadX float64
}

// TableRow is one table row; every cell uses the same style.
type TableRow struct {
	Role  Role
	Cells []string
}

// PageBreak ends the current page.
type PageBreak struct{}

// NextTemplate selects the template of the next page started. The current
// page keeps its template.
type NextTemplate struct {
	Kind TemplateKind
}

func (Paragraph) element()    {}
func (Spacer) element()       {}
func (Table) element()        {}
func (PageBreak) element()    {}
func (NextTemplate) element() {}

// Story is the ordered content of a document.
type Story []Element

// Text returns the plain text of a paragraph.
func (p Paragraph) Text() string {
	var n int
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}
