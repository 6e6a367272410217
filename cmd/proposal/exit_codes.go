package main

import (
	"context"
	"errors"
	"os"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/config"
)

// Exit codes for the proposal CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All proposals generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Layout or PDF serialization failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, proposal.ErrRender) ||
		errors.Is(err, proposal.ErrHTMLConversion) ||
		errors.Is(err, ErrVerifyPDF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadTranscript) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, proposal.ErrInvalidVoiceID) ||
		errors.Is(err, proposal.ErrInvalidClientName) ||
		errors.Is(err, proposal.ErrInvalidDate) ||
		errors.Is(err, proposal.ErrInvalidTeam) ||
		errors.Is(err, proposal.ErrTemplateNotFound) ||
		errors.Is(err, proposal.ErrInvalidTemplate) ||
		errors.Is(err, proposal.ErrStyleNotFound) ||
		errors.Is(err, proposal.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
