package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-proposal/internal/config"
)

// envPrefix starts every variable the binaries read.
const envPrefix = "PROPOSAL_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // PROPOSAL_CONFIG: config file name or path
	Timeout    time.Duration // PROPOSAL_TIMEOUT: per-proposal timeout
	Workers    int           // PROPOSAL_WORKERS: parallel workers

	// Tier 2 - I/O and identity
	OutputDir string // PROPOSAL_OUTPUT_DIR: default output directory
	AssetPath string // PROPOSAL_ASSET_PATH: custom asset directory
	Client    string // PROPOSAL_CLIENT: default client name
	Date      string // PROPOSAL_DATE: cover date

	// Tier 3 - Branding and logs
	BrandName string // PROPOSAL_BRAND_NAME: brand mark first line
	FooterURL string // PROPOSAL_FOOTER_URL: content page footer
	LogLevel  string // PROPOSAL_LOG_LEVEL: logrus level name
}

// knownEnvVars lists valid PROPOSAL_* environment variables, the server's
// included, so a shared environment does not trigger warnings.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"PROPOSAL_CONFIG":  true,
	"PROPOSAL_TIMEOUT": true,
	"PROPOSAL_WORKERS": true,
	// Tier 2 - I/O and identity
	"PROPOSAL_OUTPUT_DIR": true,
	"PROPOSAL_ASSET_PATH": true,
	"PROPOSAL_CLIENT":     true,
	"PROPOSAL_DATE":       true,
	// Tier 3 - Branding and logs
	"PROPOSAL_BRAND_NAME": true,
	"PROPOSAL_FOOTER_URL": true,
	"PROPOSAL_LOG_LEVEL":  true,
	// Server
	"PROPOSAL_SEED": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized PROPOSAL_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("PROPOSAL_CONFIG"),
		// Tier 2
		OutputDir: os.Getenv("PROPOSAL_OUTPUT_DIR"),
		AssetPath: os.Getenv("PROPOSAL_ASSET_PATH"),
		Client:    os.Getenv("PROPOSAL_CLIENT"),
		Date:      os.Getenv("PROPOSAL_DATE"),
		// Tier 3
		BrandName: os.Getenv("PROPOSAL_BRAND_NAME"),
		FooterURL: os.Getenv("PROPOSAL_FOOTER_URL"),
		LogLevel:  os.Getenv("PROPOSAL_LOG_LEVEL"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("PROPOSAL_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("PROPOSAL_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PROPOSAL_* variables.
// Helps catch typos like PROPOSAL_CLEINT instead of PROPOSAL_CLIENT.
func warnUnknownEnvVars(log logrus.FieldLogger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				log.WithField("variable", name).Warn("unknown environment variable (typo?)")
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 2 - I/O
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	// Tier 2 - Document
	if env.Client != "" && cfg.Client.DefaultName == "" {
		cfg.Client.DefaultName = env.Client
	}
	if env.Date != "" && (cfg.Document.Date == "" || cfg.Document.Date == config.DefaultDate) {
		cfg.Document.Date = env.Date
	}

	// Tier 3 - Branding
	if env.BrandName != "" && cfg.Brand.Name == "" {
		cfg.Brand.Name = env.BrandName
	}
	if env.FooterURL != "" && cfg.Brand.FooterURL == "" {
		cfg.Brand.FooterURL = env.FooterURL
	}
}
