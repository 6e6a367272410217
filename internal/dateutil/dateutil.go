// Package dateutil resolves the proposal date setting.
//
// A date setting is either a literal string, printed as is, or "auto" with
// an optional format: "auto", "auto:FORMAT" or "auto:PRESET". Formats use
// the tokens YYYY, YY, MMMM, MMM, MM, M, DD and D; text in square brackets
// is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat renders "March 05, 2026", the proposal cover format.
const DefaultDateFormat = "MMMM DD, YYYY"

const autoKeyword = "auto"

// tokens maps format tokens to Go layout fragments, longest first.
var tokens = [...]struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named formats accepted after "auto:".
var DatePresets = map[string]string{
	"proposal": DefaultDateFormat,
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a token format into a Go time layout.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := writeToken(&layout, format[i:])
		if n == 0 {
			layout.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return layout.String(), nil
}

// writeToken writes the layout for the token at the start of s and returns
// its length, or 0 when s does not start with a token.
func writeToken(b *strings.Builder, s string) int {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// IsAuto reports whether value asks for the current date.
func IsAuto(value string) bool {
	return strings.HasPrefix(strings.ToLower(value), autoKeyword)
}

// ResolveDate returns the date text for a setting. Literal values pass
// through unchanged; "auto" forms are formatted from t.
func ResolveDate(value string, t time.Time) (string, error) {
	if !IsAuto(value) {
		return value, nil
	}

	format, err := autoFormat(value)
	if err != nil {
		return "", err
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// autoFormat extracts the token format from an "auto" setting.
func autoFormat(value string) (string, error) {
	rest := value[len(autoKeyword):]
	if rest == "" {
		return DefaultDateFormat, nil
	}
	if rest[0] != ':' {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	format := rest[1:]
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		return preset, nil
	}
	return format, nil
}
