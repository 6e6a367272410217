package main

// Tests here use t.Setenv, which rules out t.Parallel.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-proposal/internal/config"
	"github.com/alnah/go-proposal/internal/logger"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("PROPOSAL_CONFIG", "/path/to/agency.yaml")
	t.Setenv("PROPOSAL_TIMEOUT", "2m")
	t.Setenv("PROPOSAL_WORKERS", "4")
	t.Setenv("PROPOSAL_OUTPUT_DIR", "/out")
	t.Setenv("PROPOSAL_ASSET_PATH", "/assets")
	t.Setenv("PROPOSAL_CLIENT", "Acme")
	t.Setenv("PROPOSAL_DATE", "auto:iso")
	t.Setenv("PROPOSAL_BRAND_NAME", "NORTHWIND")
	t.Setenv("PROPOSAL_FOOTER_URL", "www.northwind.test")
	t.Setenv("PROPOSAL_LOG_LEVEL", "debug")

	cfg := loadEnvConfig()

	want := envConfig{
		ConfigPath: "/path/to/agency.yaml",
		Timeout:    2 * time.Minute,
		Workers:    4,
		OutputDir:  "/out",
		AssetPath:  "/assets",
		Client:     "Acme",
		Date:       "auto:iso",
		BrandName:  "NORTHWIND",
		FooterURL:  "www.northwind.test",
		LogLevel:   "debug",
	}
	if *cfg != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadEnvConfig_InvalidNumbersIgnored(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		workers string
	}{
		{name: "garbage", timeout: "soon", workers: "many"},
		{name: "negative", timeout: "-5s", workers: "-2"},
		{name: "zero", timeout: "0s", workers: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROPOSAL_TIMEOUT", tt.timeout)
			t.Setenv("PROPOSAL_WORKERS", tt.workers)

			cfg := loadEnvConfig()
			if cfg.Timeout != 0 {
				t.Errorf("Timeout = %v, want 0", cfg.Timeout)
			}
			if cfg.Workers != 0 {
				t.Errorf("Workers = %d, want 0", cfg.Workers)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("PROPOSAL_CLEINT", "typo")
	t.Setenv("PROPOSAL_CLIENT", "fine")
	t.Setenv("PROPOSAL_SEED", "1")

	var buf bytes.Buffer
	warnUnknownEnvVars(logger.New("warn", logger.FormatText, &buf))

	out := buf.String()
	if !strings.Contains(out, "variable=PROPOSAL_CLEINT") {
		t.Errorf("expected a warning for PROPOSAL_CLEINT, got %q", out)
	}
	for _, known := range []string{"PROPOSAL_CLIENT", "PROPOSAL_SEED"} {
		if strings.Contains(out, "variable="+known) {
			t.Errorf("known variable %s should not warn: %q", known, out)
		}
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		OutputDir: "/env-out",
		AssetPath: "/env-assets",
		Client:    "Env Client",
		Date:      "auto:iso",
		BrandName: "ENV",
		FooterURL: "www.env.test",
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "/env-out" || cfg.Assets.BasePath != "/env-assets" {
			t.Errorf("I/O not applied: %+v %+v", cfg.Output, cfg.Assets)
		}
		if cfg.Client.DefaultName != "Env Client" {
			t.Errorf("Client.DefaultName = %q", cfg.Client.DefaultName)
		}
		if cfg.Document.Date != "auto:iso" {
			t.Errorf("Document.Date = %q, env should replace the default", cfg.Document.Date)
		}
		if cfg.Brand.Name != "ENV" || cfg.Brand.FooterURL != "www.env.test" {
			t.Errorf("Brand = %+v", cfg.Brand)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/cfg-out"
		cfg.Client.DefaultName = "Cfg Client"
		cfg.Document.Date = "May 2026"
		cfg.Brand.Name = "CFG"
		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "/cfg-out" || cfg.Client.DefaultName != "Cfg Client" ||
			cfg.Document.Date != "May 2026" || cfg.Brand.Name != "CFG" {
			t.Errorf("env overrode config values: %+v", cfg)
		}
	})
}
