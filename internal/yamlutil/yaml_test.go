package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-proposal/internal/yamlutil"
)

type brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

type settings struct {
	Brand    brand `yaml:"brand"`
	MaxPages int   `yaml:"maxPages"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "valid", data: []byte("brand:\n  name: ACME\nmaxPages: 20\n"), dest: &settings{}},
		{name: "unknown field", data: []byte("brand:\n  nmae: ACME\n"), dest: &settings{}, wantErr: yamlutil.ErrDecode},
		{name: "type mismatch", data: []byte("maxPages: many\n"), dest: &settings{}, wantErr: yamlutil.ErrDecode},
		{name: "nil data", data: nil, dest: &settings{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &settings{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("maxPages: 1\n"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
		})
	}
}

func TestUnmarshalStrict_Values(t *testing.T) {
	t.Parallel()

	var s settings
	if err := yamlutil.UnmarshalStrict([]byte("brand:\n  name: ACME\n  tagline: AGENCY\nmaxPages: 20\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Brand.Name != "ACME" || s.Brand.Tagline != "AGENCY" || s.MaxPages != 20 {
		t.Errorf("decoded %+v", s)
	}
}

func TestUnmarshalStrict_ErrorShowsSource(t *testing.T) {
	t.Parallel()

	var s settings
	err := yamlutil.UnmarshalStrict([]byte("brand:\n  name: ACME\n  colour: blue\n"), &s)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Errorf("error should quote the offending field, got %q", err.Error())
	}
}

func TestInputSizeLimit(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = orig }()

	var s settings
	err := yamlutil.UnmarshalStrict([]byte("brand:\n  name: a very long brand name\n"), &s)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(settings{Brand: brand{Name: "ACME"}, MaxPages: 3})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(out)
	for _, want := range []string{"brand:\n", "  name: ACME\n", "maxPages: 3\n"} {
		if !strings.Contains(s, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, s)
		}
	}

	var back settings
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) error = %v", err)
	}
	if back.Brand.Name != "ACME" || back.MaxPages != 3 {
		t.Errorf("decoded %+v", back)
	}
}
