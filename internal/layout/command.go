package layout

// CommandKind identifies a draw operation.
type CommandKind int

const (
	CmdFillRect CommandKind = iota
	CmdFillPolygon
	CmdText
)

func (k CommandKind) String() string {
	switch k {
	case CmdFillRect:
		return "FillRect"
	case CmdFillPolygon:
		return "FillPolygon"
	case CmdText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Command is one draw operation in page space. Which fields are meaningful
// depends on Kind: Rect for CmdFillRect, Points for CmdFillPolygon, and
// Font, Size, X, Y and Text for CmdText. X, Y is the left end of the text
// baseline.
type Command struct {
	Kind   CommandKind
	Color  Color
	Rect   Rect
	Points []Point
	Font   Font
	Size   float64
	X, Y   float64
	Text   string
}

// FillRect paints a solid rectangle.
func FillRect(c Color, r Rect) Command {
	return Command{Kind: CmdFillRect, Color: c, Rect: r}
}

// FillPolygon paints a closed solid polygon.
func FillPolygon(c Color, pts ...Point) Command {
	return Command{Kind: CmdFillPolygon, Color: c, Points: pts}
}

// Text draws s with its baseline starting at (x, y).
func Text(f Font, size float64, c Color, x, y float64, s string) Command {
	return Command{Kind: CmdText, Color: c, Font: f, Size: size, X: x, Y: y, Text: s}
}

// TextRight draws s so that it ends at x.
func TextRight(f Font, size float64, c Color, x, y float64, s string) Command {
	return Text(f, size, c, x-f.Width(s, size), y, s)
}

// TextCentered draws s centred on x.
func TextCentered(f Font, size float64, c Color, x, y float64, s string) Command {
	return Text(f, size, c, x-f.Width(s, size)/2, y, s)
}
