package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// Palette.
var (
	ColorPrimary = MustParseHex("#2c4a87")
	ColorAccent  = MustParseHex("#22396b")
	ColorWhite   = MustParseHex("#ffffff")
	ColorDark    = MustParseHex("#333333")
	ColorLight   = MustParseHex("#f5f7fa")
)

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for package-level constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
