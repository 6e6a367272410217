package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/config"
	"github.com/alnah/go-proposal/internal/logger"
)

func mustParseGenerate(t *testing.T, args ...string) (*generateFlags, []string) {
	t.Helper()

	f, positional, err := parseGenerateFlags(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseGenerateFlags(%v) error = %v", args, err)
	}
	return f, positional
}

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		env     time.Duration
		want    time.Duration
		wantErr bool
	}{
		{name: "unset", want: 0},
		{name: "env only", env: time.Minute, want: time.Minute},
		{name: "flag wins", flag: "45s", env: time.Minute, want: 45 * time.Second},
		{name: "garbage", flag: "soon", wantErr: true},
		{name: "zero", flag: "0s", wantErr: true},
		{name: "negative", flag: "-5s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flag, tt.env)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Errorf("resolveTimeout() error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("resolveTimeout() = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.DefaultDir = "from-config"
	cfg.Assets.BasePath = "config-assets"

	f, _ := mustParseGenerate(t, "-o", "from-flag", "--date", "auto:us")
	mergeFlags(f, cfg)

	if cfg.Output.DefaultDir != "from-flag" {
		t.Errorf("DefaultDir = %q, want from-flag", cfg.Output.DefaultDir)
	}
	if cfg.Assets.BasePath != "config-assets" {
		t.Errorf("BasePath = %q, unset flag should keep config", cfg.Assets.BasePath)
	}
	if cfg.Document.Date != "auto:us" {
		t.Errorf("Date = %q, want auto:us", cfg.Document.Date)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults without a name", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{BrandName: "Env Brand"})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Brand.Name != "Env Brand" || cfg.Document.Date != config.DefaultDate {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("file from env path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "agency.yaml")
		writeFile(t, path, "brand:\n  name: File Brand\nclient:\n  defaultName: Globex\n")

		cfg, err := loadConfig("", &envConfig{ConfigPath: path, BrandName: "Env Brand"})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Brand.Name != "File Brand" {
			t.Errorf("Brand.Name = %q, config file should win over env", cfg.Brand.Name)
		}
		if cfg.Client.DefaultName != "Globex" {
			t.Errorf("Client.DefaultName = %q", cfg.Client.DefaultName)
		}
	})

	t.Run("missing adds hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig("no-such-config-xyz", &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error %q should carry a hint", err)
		}
	})
}

func TestWithHint(t *testing.T) {
	t.Parallel()

	if err := withHint(proposal.ErrInvalidAssetPath); !strings.Contains(err.Error(), "--asset-path") {
		t.Errorf("asset path hint missing: %v", err)
	}
	err := withHint(proposal.ErrInvalidTemplate)
	if !errors.Is(err, proposal.ErrInvalidTemplate) || !strings.Contains(err.Error(), "ai.md, mobile.md") {
		t.Errorf("template hint = %v", err)
	}
	plain := errors.New("boom")
	if got := withHint(plain); got != plain {
		t.Errorf("withHint(other) = %v, want unchanged", got)
	}
}

func TestRunGenerate_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "calls")
	out := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(in, "acme.txt"), scenarioTranscript)
	writeFile(t, filepath.Join(in, "2026", "globex.txt"), "We need a new mobile app for iOS and Android")

	f, positional := mustParseGenerate(t, in, "-o", out, "-f", "all", "-w", "2", "--verify")
	env, stdout, _ := testEnv("")

	if err := runGenerate(context.Background(), positional, f, env, logger.Discard()); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	for _, name := range []string{"acme.pdf", "acme.md", "acme.html", "2026/globex.pdf"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	md, err := os.ReadFile(filepath.Join(out, "acme.md"))
	if err != nil {
		t.Fatalf("reading markdown: %v", err)
	}
	if !strings.HasPrefix(string(md), "# AI & Automation Strategy Proposal") {
		t.Errorf("markdown starts with %q", strings.SplitN(string(md), "\n", 2)[0])
	}
	if !strings.Contains(string(md), "acme") {
		t.Error("markdown should carry the voice ID taken from the file name")
	}

	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunGenerate_Errors(t *testing.T) {
	t.Parallel()

	empty := t.TempDir()
	transcript := filepath.Join(t.TempDir(), "acme.txt")
	writeFile(t, transcript, "hello")

	tests := []struct {
		name    string
		args    []string
		mutate  func(*generateFlags)
		wantErr error
	}{
		{name: "no input", args: nil, wantErr: ErrNoInput},
		{name: "empty directory", args: []string{empty}, wantErr: ErrNoInput},
		{name: "bad format", args: []string{transcript, "-f", "docx"}, wantErr: ErrInvalidFormat},
		{name: "bad timeout", args: []string{transcript, "-t", "later"}, wantErr: ErrInvalidTimeout},
		{name: "bad date", args: []string{transcript, "--date", "auto:"}, wantErr: config.ErrInvalidValue},
		{
			name:    "too many workers",
			args:    []string{transcript},
			mutate:  func(f *generateFlags) { f.workers = proposal.MaxPoolSize + 1 },
			wantErr: ErrInvalidWorkerCount,
		},
		{name: "bad asset path", args: []string{transcript, "--asset-path", filepath.Join(empty, "missing")}, wantErr: proposal.ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional := mustParseGenerate(t, tt.args...)
			if tt.mutate != nil {
				tt.mutate(f)
			}
			env, _, _ := testEnv("")

			err := runGenerate(context.Background(), positional, f, env, logger.Discard())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runGenerate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
