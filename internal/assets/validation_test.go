package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	accepted := []string{"ai", "mobile", "enterprise", "web", "general", "preview", "header", "q3-offer", "client_42", "Acme"}
	for _, name := range accepted {
		t.Run("accepts "+name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateAssetName(name); err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", name, err)
			}
		})
	}

	rejected := map[string]string{
		"empty":           "",
		"slash":           "proposals/ai",
		"backslash":       `proposals\ai`,
		"traversal":       "../ai",
		"deep traversal":  "../../etc/passwd",
		"extension":       "ai.md",
		"hidden":          ".ai",
		"absolute":        "/etc/passwd",
		"drive letter":    `C:\assets`,
		"two dots":        "..",
		"nul byte":        "ai\x00md",
		"over the length": strings.Repeat("a", MaxAssetNameLength+1),
	}
	for name, input := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateAssetName(input); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", input, err)
			}
		})
	}
}

func TestValidateAssetName_LengthLimit(t *testing.T) {
	t.Parallel()

	if err := ValidateAssetName(strings.Repeat("a", MaxAssetNameLength)); err != nil {
		t.Errorf("name at the limit should pass, got %v", err)
	}
}

func TestValidateAssetName_MessageNamesAsset(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../ai")
	if err == nil || !strings.Contains(err.Error(), "../ai") {
		t.Errorf("error %v should name the rejected asset", err)
	}
	if err := ValidateAssetName(""); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("empty name error %v should say so", err)
	}
}
