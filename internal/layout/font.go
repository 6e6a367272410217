package layout

import "golang.org/x/text/encoding/charmap"

// Font is one of the two standard Type 1 faces the renderer uses. Both are
// built into every PDF reader, so nothing is embedded.
type Font int

const (
	FontRegular Font = iota
	FontBold

	numFonts
)

var fontNames = [...]string{
	FontRegular: "Helvetica",
	FontBold:     "Helvetica-Bold",
}

var (
	_ [len(fontNames) - int(numFonts)]struct{}
	_ [int(numFonts) - len(fontNames)]struct{}
)

// Fonts returns every font in declaration order.
func Fonts() []Font {
	return []Font{FontRegular, FontBold}
}

// Name returns the PostScript base font name.
func (f Font) Name() string {
	if f < 0 || f >= numFonts {
		return fontNames[FontRegular]
	}
	return fontNames[f]
}

// ReplacementByte stands in for runes WinAnsiEncoding cannot represent.
const ReplacementByte = '?'

// Encode converts s to WinAnsi (Windows-1252) bytes, the encoding declared
// for both fonts. Unencodable runes become ReplacementByte and control
// characters are dropped.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = ReplacementByte
		}
		out = append(out, b)
	}
	return out
}

// Width returns the advance width of s at size points.
func (f Font) Width(s string, size float64) float64 {
	table := &helveticaWidths
	if f == FontBold {
		table = &helveticaBoldWidths
	}
	var units int
	for _, b := range Encode(s) {
		units += int(table[b])
	}
	return float64(units) * size / 1000
}

// Glyph advance widths in 1/1000 em, indexed by WinAnsi byte. Values come
// from the Adobe Core14 AFM files.
var (
	helveticaWidths     = buildWidths(helveticaASCII, winAnsiSpecial, nil)
	helveticaBoldWidths = buildWidths(helveticaBoldASCII, winAnsiSpecial, boldQuotes)
)

// ASCII 0x20 through 0x7e.
var helveticaASCII = [95]int16{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

var helveticaBoldASCII = [95]int16{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

// High-half glyphs whose width differs from the Latin-1 letter default.
var winAnsiSpecial = map[byte]int16{
	0x80: 556,  // Euro
	0x85: 1000, // ellipsis
	0x91: 222,  // quoteleft
	0x92: 222,  // quoteright
	0x93: 333,  // quotedblleft
	0x94: 333,  // quotedblright
	0x95: 350,  // bullet
	0x96: 556,  // endash
	0x97: 1000, // emdash
	0xa0: 278,  // nbsp
	0xa9: 737,  // copyright
	0xae: 737,  // registered
	0xb0: 400,  // degree
}

// Helvetica-Bold curly quotes are wider than the regular face.
var boldQuotes = map[byte]int16{0x91: 278, 0x92: 278, 0x93: 500, 0x94: 500}

func buildWidths(ascii [95]int16, overrides ...map[byte]int16) [256]int16 {
	var w [256]int16
	for i := range w {
		w[i] = 556
	}
	for i, v := range ascii {
		w[0x20+i] = v
	}
	for _, m := range overrides {
		for b, v := range m {
			w[b] = v
		}
	}
	return w
}
