package config

import (
	"context"
	"testing"
	"time"

	proposal "github.com/alnah/go-proposal"
)

func TestGeneratorOptions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.Document.Date = "auto:iso"
	cfg.Client.DefaultName = "Globex"
	cfg.Brand.Name = "Northwind"
	cfg.Team.Members = validTeam()

	gen, err := proposal.NewGenerator(cfg.GeneratorOptions(func() time.Time { return now }, time.Minute)...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	res, err := gen.Generate(context.Background(), proposal.Input{Transcript: "AI chatbot, $20k", SkipPDF: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Meta.Date != "2026-03-05" {
		t.Errorf("Meta.Date = %q, want 2026-03-05", res.Meta.Date)
	}
	if res.Meta.ClientName != "Globex" {
		t.Errorf("Meta.ClientName = %q, want Globex", res.Meta.ClientName)
	}
}

func TestGeneratorOptions_Defaults(t *testing.T) {
	t.Parallel()

	if _, err := proposal.NewGenerator(DefaultConfig().GeneratorOptions(nil, 0)...); err != nil {
		t.Errorf("default config should build a generator: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Assets.BasePath = "/nonexistent/assets/xyz"
	if _, err := proposal.NewGenerator(cfg.GeneratorOptions(nil, 0)...); err == nil {
		t.Error("bad asset path should fail generator construction")
	}
}
