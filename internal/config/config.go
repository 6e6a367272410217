package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-proposal/internal/dateutil"
	"github.com/alnah/go-proposal/internal/fileutil"
	"github.com/alnah/go-proposal/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits. Everything here ends up painted on a page, so the
// limits follow what fits the page templates.
const (
	MaxBrandLength      = 40   // top-left mark lines
	MaxPresenterLength  = 60   // "PRESENTED BY" value
	MaxURLLength        = 2048 // footer URL
	MaxClientNameLength = 100  // cover "PREPARED FOR" value
	MaxMemberNameLength = 40   // team table column
	MaxMemberRoleLength = 40   // team table column
	MaxCoverLineLength  = 60   // cover title lines
	MaxSubtitleLength   = 120  // cover subtitle
	MaxHeadingLength    = 60   // team section heading
	MaxTextLength       = 500  // team section intro
	MaxDateLength       = 60   // "March 05, 2026" or "auto:FORMAT"
	MaxPathLength       = 4096
)

// TeamSize is the number of columns in the team table.
const TeamSize = 3

// Upper bounds for limits; zero means the renderer default.
const (
	MaxMaxLines = 100_000
	MaxMaxPages = 2_000
)

// DefaultDate formats the current date like "March 05, 2026".
const DefaultDate = "auto"

// Config holds all configuration for proposal generation.
type Config struct {
	Brand    BrandConfig    `yaml:"brand"`
	Client   ClientConfig   `yaml:"client"`
	Cover    CoverConfig    `yaml:"cover"`
	Team     TeamConfig     `yaml:"team"`
	Assets   AssetsConfig   `yaml:"assets"`
	Limits   LimitsConfig   `yaml:"limits"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
}

// BrandConfig is the agency identity painted on page backgrounds. Empty
// fields keep the built-in brand.
type BrandConfig struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	PresentedBy string `yaml:"presentedBy"`
	FooterURL   string `yaml:"footerURL"`
}

// ClientConfig defines client defaults.
type ClientConfig struct {
	DefaultName string `yaml:"defaultName"` // used when a request names no client
}

// CoverConfig overrides the cover text flowed into the cover frame.
type CoverConfig struct {
	TitleLines []string `yaml:"titleLines"`
	Subtitle   string   `yaml:"subtitle"`
}

// TeamConfig overrides the closing team section.
type TeamConfig struct {
	Heading string       `yaml:"heading"`
	Intro   string       `yaml:"intro"`
	Members []TeamMember `yaml:"members"` // empty or exactly TeamSize
}

// TeamMember is one column of the team table.
type TeamMember struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LimitsConfig bounds pathological input. Zero keeps the defaults.
type LimitsConfig struct {
	MaxLines int `yaml:"maxLines"`
	MaxPages int `yaml:"maxPages"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the transcript
}

// DocumentConfig defines per-document values.
type DocumentConfig struct {
	Date string `yaml:"date"` // literal, "auto" or "auto:FORMAT"
}

// Validate checks field lengths and value ranges. Called by LoadConfig,
// and by consumers that build a Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"brand.name", c.Brand.Name, MaxBrandLength},
		{"brand.tagline", c.Brand.Tagline, MaxBrandLength},
		{"brand.presentedBy", c.Brand.PresentedBy, MaxPresenterLength},
		{"brand.footerURL", c.Brand.FooterURL, MaxURLLength},
		{"client.defaultName", c.Client.DefaultName, MaxClientNameLength},
		{"cover.subtitle", c.Cover.Subtitle, MaxSubtitleLength},
		{"team.heading", c.Team.Heading, MaxHeadingLength},
		{"team.intro", c.Team.Intro, MaxTextLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.date", c.Document.Date, MaxDateLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, line := range c.Cover.TitleLines {
		if err := validateFieldLength(fmt.Sprintf("cover.titleLines[%d]", i), line, MaxCoverLineLength); err != nil {
			return err
		}
	}

	if n := len(c.Team.Members); n != 0 && n != TeamSize {
		return fmt.Errorf("%w: team.members: need exactly %d members, got %d", ErrInvalidValue, TeamSize, n)
	}
	for i, m := range c.Team.Members {
		if m.Name == "" {
			return fmt.Errorf("%w: team.members[%d].name: required", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("team.members[%d].name", i), m.Name, MaxMemberNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("team.members[%d].role", i), m.Role, MaxMemberRoleLength); err != nil {
			return err
		}
	}

	if err := validateRange("limits.maxLines", c.Limits.MaxLines, MaxMaxLines); err != nil {
		return err
	}
	if err := validateRange("limits.maxPages", c.Limits.MaxPages, MaxMaxPages); err != nil {
		return err
	}

	if dateutil.IsAuto(c.Document.Date) {
		if _, err := dateutil.ResolveDate(c.Document.Date, time.Time{}); err != nil {
			return fmt.Errorf("%w: document.date: %w", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange accepts 0 (use default) through maxValue.
func validateRange(fieldName string, value, maxValue int) error {
	if value < 0 || value > maxValue {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrInvalidValue, fieldName, maxValue, value)
	}
	return nil
}

// DefaultConfig returns a configuration that keeps every built-in: brand,
// cover, team, embedded assets and limits.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{Date: DefaultDate},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders the config as YAML, for `proposal config`.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists where a config name is looked up, in order: current
// directory, then ~/.config/go-proposal/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-proposal", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
