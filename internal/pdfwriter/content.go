package pdfwriter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-proposal/internal/layout"
)

// contentStream renders draw commands as PDF content stream operators.
func contentStream(cmds []layout.Command) ([]byte, error) {
	var buf bytes.Buffer
	for i, c := range cmds {
		switch c.Kind {
		case layout.CmdFillRect:
			fmt.Fprintf(&buf, "q %s %s %s %s %s re f Q\n",
				fillColor(c.Color), num(c.Rect.X), num(c.Rect.Y), num(c.Rect.W), num(c.Rect.H))
		case layout.CmdFillPolygon:
			if len(c.Points) < 3 {
				return nil, fmt.Errorf("%w: command %d: polygon needs 3 points, got %d", ErrInvalidPage, i, len(c.Points))
			}
			fmt.Fprintf(&buf, "q %s %s %s m", fillColor(c.Color), num(c.Points[0].X), num(c.Points[0].Y))
			for _, p := range c.Points[1:] {
				fmt.Fprintf(&buf, " %s %s l", num(p.X), num(p.Y))
			}
			buf.WriteString(" h f Q\n")
		case layout.CmdText:
			if c.Text == "" {
				continue
			}
			if c.Size <= 0 {
				return nil, fmt.Errorf("%w: command %d: font size %.2f", ErrInvalidPage, i, c.Size)
			}
			fmt.Fprintf(&buf, "BT /%s %s Tf %s %s %s Td (%s) Tj ET\n",
				fontResource(c.Font), num(c.Size), fillColor(c.Color), num(c.X), num(c.Y), escapeString(c.Text))
		default:
			return nil, fmt.Errorf("%w: command %d has unknown kind %d", ErrInvalidPage, i, c.Kind)
		}
	}
	return buf.Bytes(), nil
}

func fontResource(f layout.Font) string {
	if f < 0 || int(f) >= len(fontResources) {
		return fontResources[layout.FontRegular].name
	}
	return fontResources[f].name
}

// fillColor returns the "r g b rg" operator for c.
func fillColor(c layout.Color) string {
	return component(c.R) + " " + component(c.G) + " " + component(c.B) + " rg"
}

func component(v uint8) string {
	return num(float64(v) / 255)
}

// num formats a coordinate with at most three decimals and no trailing
// zeros, so output does not depend on float noise below a thousandth of a
// point.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// escapeString encodes s to WinAnsi and escapes it for a literal string.
// Bytes outside printable ASCII are written as octal escapes so the stream
// stays 7-bit clean before compression.
func escapeString(s string) string {
	var sb strings.Builder
	for _, b := range layout.Encode(s) {
		switch {
		case b == '(' || b == ')' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b < 0x20 || b > 0x7e:
			fmt.Fprintf(&sb, "\\%03o", b)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
