package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	proposal "github.com/alnah/go-proposal"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("transcript must have .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

// transcriptExt is the extension of transcript files.
const transcriptExt = ".txt"

// defaultStdinBase is the output name for a transcript read from stdin.
const defaultStdinBase = "proposal"

// TranscriptJob is a single transcript to process. OutputBase is the output
// path without extension; each format adds its own.
type TranscriptJob struct {
	InputPath  string
	OutputBase string
}

// resolveInputPath returns the single positional input.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%w: pass a transcript, a directory or - for stdin", ErrNoInput)
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
}

// discoverTranscripts finds all transcripts to process.
func discoverTranscripts(inputPath, outputDir string) ([]TranscriptJob, error) {
	if inputPath == stdinPath {
		return []TranscriptJob{{InputPath: stdinPath, OutputBase: stdinOutputBase(outputDir)}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateTranscriptExtension(inputPath); err != nil {
			return nil, err
		}
		return []TranscriptJob{{InputPath: inputPath, OutputBase: resolveOutputBase(inputPath, outputDir, "")}}, nil
	}

	var jobs []TranscriptJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != transcriptExt {
			return nil
		}
		jobs = append(jobs, TranscriptJob{InputPath: path, OutputBase: resolveOutputBase(path, outputDir, inputPath)})
		return nil
	})

	return jobs, err
}

// resolveOutputBase determines the extensionless output path for a
// transcript. An outputDir with a known output extension names the file
// itself; directory inputs keep their tree under outputDir.
func resolveOutputBase(inputPath, outputDir, baseInputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir == "" && hasOutputExt(outputDir) {
		return strings.TrimSuffix(outputDir, filepath.Ext(outputDir))
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// stdinOutputBase names the outputs of a stdin transcript.
func stdinOutputBase(outputDir string) string {
	switch {
	case outputDir == "":
		return defaultStdinBase
	case hasOutputExt(outputDir):
		return strings.TrimSuffix(outputDir, filepath.Ext(outputDir))
	default:
		return filepath.Join(outputDir, defaultStdinBase)
	}
}

func hasOutputExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case "." + formatPDF, "." + formatMD, "." + formatHTML:
		return true
	default:
		return false
	}
}

// validateTranscriptExtension checks that the file has a .txt extension.
func validateTranscriptExtension(path string) error {
	if ext := filepath.Ext(path); ext != transcriptExt {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > proposal.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, proposal.MaxPoolSize)
	}
	return nil
}

// voiceIDFor returns the voice ID of a transcript: the flag value, else the
// file name without extension. Standard input has none.
func voiceIDFor(flagValue, inputPath string) string {
	if flagValue != "" || inputPath == stdinPath {
		return flagValue
	}
	return strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
}
