package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidEnv indicates an environment variable holds an unusable value.
var ErrInvalidEnv = errors.New("invalid environment variable")

// serverConfig holds settings read from the environment (and .env).
type serverConfig struct {
	Port        string
	DatabaseURL string
	APIKey      string
	Seed        bool
	ConfigPath  string
	Workers     int
	Timeout     time.Duration
	RateLimit   int64
	RatePeriod  time.Duration
	LogLevel    string
	LogFormat   string
}

// loadServerConfig reads the server settings through getenv.
func loadServerConfig(getenv func(string) string) (*serverConfig, error) {
	cfg := &serverConfig{
		Port:        envOr(getenv, "PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL"),
		APIKey:      getenv("PROPOSAL_API_KEY"),
		ConfigPath:  getenv("PROPOSAL_CONFIG"),
		LogLevel:    envOr(getenv, "LOG_LEVEL", "info"),
		LogFormat:   envOr(getenv, "LOG_FORMAT", "json"),
	}

	var err error
	if cfg.Seed, err = parseBool(getenv, "PROPOSAL_SEED"); err != nil {
		return nil, err
	}
	if cfg.Workers, err = parseInt(getenv, "PROPOSAL_WORKERS"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = parseDuration(getenv, "PROPOSAL_TIMEOUT"); err != nil {
		return nil, err
	}
	rate, err := parseInt(getenv, "RATE_LIMIT")
	if err != nil {
		return nil, err
	}
	cfg.RateLimit = int64(rate)
	if cfg.RatePeriod, err = parseDuration(getenv, "RATE_LIMIT_PERIOD"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(getenv func(string) string, key string) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidEnv, key, raw)
	}
	return b, nil
}

func parseInt(getenv func(string) string, key string) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidEnv, key, raw)
	}
	return n, nil
}

func parseDuration(getenv func(string) string, key string) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a duration like 30s", ErrInvalidEnv, key, raw)
	}
	return d, nil
}
