package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "proposal format", format: "MMMM DD, YYYY", want: "January 02, 2006"},
		{name: "long format", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "short month and year", format: "MMM YY", want: "Jan 06"},
		{name: "single digit tokens", format: "D/M", want: "2/1"},
		{name: "literal characters kept", format: "DD.MM.YYYY", want: "02.01.2006"},
		{name: "bracket escape", format: "[Due] YYYY", want: "Due 2006"},
		{name: "bracket protects tokens", format: "[MM]-MM", want: "MM-01"},
		{name: "empty brackets", format: "[]YYYY", want: "2006"},
		{name: "empty format", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[YYYY", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("Y", MaxDateFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "auto uses proposal format", value: "auto", want: "March 05, 2026"},
		{name: "auto is case insensitive", value: "AUTO", want: "March 05, 2026"},
		{name: "custom format", value: "auto:DD/MM/YYYY", want: "05/03/2026"},
		{name: "proposal preset", value: "auto:proposal", want: "March 05, 2026"},
		{name: "long preset", value: "auto:long", want: "March 5, 2026"},
		{name: "iso preset", value: "auto:ISO", want: "2026-03-05"},
		{name: "us preset", value: "auto:us", want: "03/05/2026"},
		{name: "european preset", value: "auto:European", want: "05/03/2026"},
		{name: "literal passthrough", value: "Spring 2026", want: "Spring 2026"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "empty format after colon", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "bad auto syntax", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", value: "auto:[YYYY", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsAuto(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]bool{
		"auto":       true,
		"Auto:iso":   true,
		"March 2026": false,
		"":           false,
		"not auto":   false,
	} {
		if got := IsAuto(value); got != want {
			t.Errorf("IsAuto(%q) = %v, want %v", value, got, want)
		}
	}
}
