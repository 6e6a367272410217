package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/config"
	"github.com/alnah/go-proposal/internal/hints"
	"github.com/alnah/go-proposal/internal/logger"
)

// Sentinel errors for flag values.
var (
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// Output formats.
const (
	formatPDF  = "pdf"
	formatMD   = "md"
	formatHTML = "html"
	formatAll  = "all"
)

// formatSet selects the files written for each transcript.
type formatSet struct {
	pdf  bool
	md   bool
	html bool
}

// parseFormats parses a comma-separated --format value.
func parseFormats(value string) (formatSet, error) {
	var fs formatSet
	for _, part := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case formatPDF:
			fs.pdf = true
		case formatMD:
			fs.md = true
		case formatHTML:
			fs.html = true
		case formatAll:
			fs = formatSet{pdf: true, md: true, html: true}
		default:
			return formatSet{}, fmt.Errorf("%w: %q (use pdf, md, html or all)", ErrInvalidFormat, part)
		}
	}
	return fs, nil
}

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Generate(ctx context.Context, input proposal.Input) (*proposal.Result, error)
	Size() int
}

// Compile-time interface implementation check.
var _ Pool = (*proposal.GeneratorPool)(nil)

// generationParams groups values shared by every transcript of a run.
type generationParams struct {
	voiceID string
	client  string
	formats formatSet
	verify  bool
	env     *Environment
	log     logrus.FieldLogger
}

// newLogger builds the CLI logger: text to stderr, warnings by default,
// debug with --verbose and errors only with --quiet.
func newLogger(f commonFlags, env *Environment) *logrus.Logger {
	level := loadEnvConfig().LogLevel
	switch {
	case f.verbose:
		level = logrus.DebugLevel.String()
	case f.quiet:
		level = logrus.ErrorLevel.String()
	case level == "":
		level = logrus.WarnLevel.String()
	}
	return logger.New(level, logger.FormatText, env.Stderr)
}

// runGenerate orchestrates proposal generation for one input.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment, log *logrus.Logger) error {
	warnUnknownEnvVars(log)
	envCfg := loadEnvConfig()

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	formats, err := parseFormats(flags.out.format)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}
	jobs, err := discoverTranscripts(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering transcripts: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no .txt transcripts found in %s", ErrNoInput, inputPath)
	}

	poolSize := min(proposal.ResolvePoolSize(workers), len(jobs))
	log.WithField("workers", poolSize).Debug("starting generation")

	pool, err := proposal.NewGeneratorPool(poolSize, cfg.GeneratorOptions(env.Now, timeout)...)
	if err != nil {
		return withHint(err)
	}
	defer pool.Close()

	results := generateBatch(ctx, pool, jobs, &generationParams{
		voiceID: flags.document.voiceID,
		client:  flags.document.client,
		formats: formats,
		verify:  flags.out.verify,
		env:     env,
		log:     log,
	})

	failed, firstErr := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d generation(s) failed: %w", failed, firstErr)
	}
	return nil
}

// loadConfig loads the named config, falling back to PROPOSAL_CONFIG, then
// applies environment overrides. No name means built-in defaults.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg. CLI wins.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
}

// resolveTimeout picks the --timeout flag, then PROPOSAL_TIMEOUT. Zero
// means the library default.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue == "" {
		return envValue, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// withHint appends an actionable hint to generator construction errors.
func withHint(err error) error {
	switch {
	case errors.Is(err, proposal.ErrInvalidAssetPath):
		return fmt.Errorf("%w%s", err, hints.ForAssetPath())
	case errors.Is(err, proposal.ErrInvalidTemplate), errors.Is(err, proposal.ErrTemplateNotFound):
		slugs := make([]string, 0, 5)
		for _, c := range []proposal.Category{
			proposal.CategoryAI,
			proposal.CategoryMobile,
			proposal.CategoryEnterprise,
			proposal.CategoryWeb,
			proposal.CategoryGeneral,
		} {
			slugs = append(slugs, c.Slug())
		}
		return fmt.Errorf("%w%s", err, hints.ForInvalidTemplate(slugs))
	default:
		return err
	}
}
