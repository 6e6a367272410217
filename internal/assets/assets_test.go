package assets

import (
	"errors"
	"testing"
)

func TestPackageLevelLoaders(t *testing.T) {
	t.Parallel()

	t.Run("LoadProposal", func(t *testing.T) {
		t.Parallel()

		got, err := LoadProposal("general")
		if err != nil {
			t.Fatalf("LoadProposal() error = %v", err)
		}
		if got == "" {
			t.Error("LoadProposal() returned empty content")
		}
	})

	t.Run("LoadStyle", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadStyle(DefaultStyleName); err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
	})

	t.Run("LoadTemplate", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadTemplate(DefaultHeaderTemplate); err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
	})

	t.Run("unknown proposal", func(t *testing.T) {
		t.Parallel()

		_, err := LoadProposal("unknown")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Errorf("LoadProposal(unknown) error = %v, want ErrProposalNotFound", err)
		}
	})
}
