package layout

// MM is one millimetre in PDF points.
const MM = 72.0 / 25.4

// A4 page size in points.
const (
	PageWidth  = 595.2756
	PageHeight = 841.8898
)

// Point is a position in page space. The origin is the bottom-left corner.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Top returns the y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Margins are the outer page margins.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins leave a taller bottom margin for the footer and badge.
var DefaultMargins = Margins{Left: 20 * MM, Right: 20 * MM, Top: 20 * MM, Bottom: 30 * MM}

// Body returns the area inside the margins of a page of the given size.
func (m Margins) Body(width, height float64) Rect {
	return Rect{
		X: m.Left,
		Y: m.Bottom,
		W: width - m.Left - m.Right,
		H: height - m.Top - m.Bottom,
	}
}
