package layout

import (
	"regexp"
	"strconv"
)

// TemplateKind identifies a page template.
type TemplateKind int

const (
	TemplateCover TemplateKind = iota
	TemplateContent

	numTemplates
)

func (k TemplateKind) String() string {
	switch k {
	case TemplateCover:
		return "Cover"
	case TemplateContent:
		return "Content"
	default:
		return "Unknown"
	}
}

// Brand holds the fixed agency strings painted on page backgrounds.
type Brand struct {
	Name        string // bold first line of the top-left mark
	Tagline     string // second line of the mark
	PresentedBy string
	FooterURL   string
}

// DefaultBrand is the built-in agency identity.
var DefaultBrand = Brand{
	Name:        "ANTIGRAVITY",
	Tagline:     "AGENCY",
	PresentedBy: "ANTIGRAVITY TEAM",
	FooterURL:   "www.antigravity.com",
}

// Meta is the per-document data backgrounds may show.
type Meta struct {
	Date       string
	ClientName string
	Brand      Brand
}

// BackgroundFunc returns the commands painted beneath a page's flowed
// content. pageNumber is the 1-based index among pages of the same template.
type BackgroundFunc func(pageNumber int, meta Meta) []Command

// PageTemplate is a page design: one content frame plus a background.
type PageTemplate struct {
	Frame      Rect
	Background BackgroundFunc
}

// DefaultTemplates returns the Cover and Content templates for an A4 page
// with the given margins. The cover frame stops 100mm short of the top
// margin, leaving room for the brand mark.
func DefaultTemplates(m Margins) [numTemplates]PageTemplate {
	body := m.Body(PageWidth, PageHeight)
	cover := body
	cover.H -= 100 * MM

	return [numTemplates]PageTemplate{
		TemplateCover:   {Frame: cover, Background: CoverBackground},
		TemplateContent: {Frame: body, Background: ContentBackground},
	}
}

// Background dispatches to the background of kind.
func Background(kind TemplateKind, pageNumber int, meta Meta) []Command {
	switch kind {
	case TemplateCover:
		return CoverBackground(pageNumber, meta)
	case TemplateContent:
		return ContentBackground(pageNumber, meta)
	default:
		return nil
	}
}

// CoverBackground paints the brand wash, the two accent triangles, the brand
// mark, the date, the presenter and client names, and the year mark.
func CoverBackground(_ int, meta Meta) []Command {
	const w, h = PageWidth, PageHeight

	cmds := []Command{
		FillRect(ColorPrimary, Rect{X: 0, Y: 0, W: w, H: h}),
		FillPolygon(ColorAccent, Point{w, h}, Point{w, h * 0.4}, Point{w * 0.3, h}),
		FillPolygon(ColorAccent, Point{0, 0}, Point{w * 0.4, 0}, Point{0, h * 0.3}),
		FillRect(ColorWhite, Rect{X: 20 * MM, Y: h - 30*MM, W: 10 * MM, H: 10 * MM}),
		Text(FontBold, 12, ColorWhite, 35*MM, h-26*MM, meta.Brand.Name),
		Text(FontRegular, 12, ColorWhite, 35*MM, h-31*MM, meta.Brand.Tagline),
	}
	if meta.Date != "" {
		cmds = append(cmds, TextRight(FontRegular, 10, ColorWhite, w-20*MM, h-30*MM, meta.Date))
	}
	cmds = append(cmds,
		Text(FontBold, 10, ColorWhite, 20*MM, 30*MM, "PRESENTED BY"),
		Text(FontRegular, 10, ColorWhite, 20*MM, 25*MM, meta.Brand.PresentedBy),
		Text(FontBold, 10, ColorWhite, w/2, 30*MM, "PREPARED FOR"),
	)
	clientRight := w - 20*MM
	if year := YearMark(meta.Date); year != "" {
		cmds = append(cmds, TextRight(FontBold, 30, ColorWhite, w-20*MM, 25*MM, year))
		clientRight -= FontBold.Width(year, 30) + 5*MM
	}
	size := fitSize(FontRegular, 10, meta.ClientName, clientRight-w/2)
	return append(cmds, Text(FontRegular, size, ColorWhite, w/2, 25*MM, meta.ClientName))
}

// fitSize returns size, or the smaller size at which s spans exactly
// maxWidth.
func fitSize(f Font, size float64, s string, maxWidth float64) float64 {
	width := f.Width(s, size)
	if width <= maxWidth || width == 0 {
		return size
	}
	return size * maxWidth / width
}

// ContentBackground paints the corner accent, the page-number badge and the
// footer URL.
func ContentBackground(pageNumber int, meta Meta) []Command {
	const w, h = PageWidth, PageHeight

	return []Command{
		FillPolygon(ColorPrimary, Point{w, h}, Point{w, h - 40*MM}, Point{w - 60*MM, h}),
		FillRect(ColorPrimary, Rect{X: w - 20*MM, Y: 10 * MM, W: 20 * MM, H: 15 * MM}),
		TextCentered(FontBold, 12, ColorWhite, w-10*MM, 15*MM, strconv.Itoa(pageNumber)),
		Text(FontRegular, 9, ColorDark, 20*MM, 15*MM, meta.Brand.FooterURL),
	}
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// YearMark returns the last four-digit group in date, or "" when there is
// none.
func YearMark(date string) string {
	all := yearPattern.FindAllString(date, -1)
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}
