package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/fileutil"
	"github.com/alnah/go-proposal/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxTranscriptSize bounds a single transcript read.
const maxTranscriptSize = 10 << 20

// Sentinel errors for batch operations.
var (
	ErrReadTranscript = errors.New("failed to read transcript")
	ErrWriteOutput    = errors.New("failed to write output file")
)

// GenerationResult holds the outcome of a single transcript.
type GenerationResult struct {
	InputPath string
	Outputs   []string
	Category  proposal.Category
	Pages     int
	Err       error
	Duration  time.Duration
}

// generateBatch processes jobs concurrently, one worker per pool slot.
func generateBatch(ctx context.Context, pool Pool, jobs []TranscriptJob, params *generationParams) []GenerationResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(jobs))

	results := make([]GenerationResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = generateFile(ctx, pool, jobs[idx], params)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// generateFile processes a single transcript and returns the result.
func generateFile(ctx context.Context, pool Pool, job TranscriptJob, params *generationParams) GenerationResult {
	start := time.Now()
	result := GenerationResult{InputPath: job.InputPath}

	transcript, err := readTranscript(job.InputPath, params.env.Stdin)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	res, err := pool.Generate(ctx, proposal.Input{
		Transcript: transcript,
		VoiceID:    voiceIDFor(params.voiceID, job.InputPath),
		ClientName: params.client,
		HTML:       params.formats.html,
		SkipPDF:    !params.formats.pdf,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Category = res.Document.Category
	result.Pages = res.Pages

	params.log.WithFields(logrus.Fields{
		"input":             job.InputPath,
		"category":          res.Document.Category.String(),
		"budget_fallback":   res.Document.BudgetFallback,
		"timeline_fallback": res.Document.TimelineFallback,
		"pages":             res.Pages,
	}).Debug("proposal generated")

	if params.verify && res.PDF != nil {
		if err := verifyPDF(res.PDF, res.Pages); err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputBase), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	outputs := []struct {
		enabled bool
		ext     string
		data    []byte
	}{
		{params.formats.md, formatMD, []byte(res.Document.Markdown)},
		{params.formats.html, formatHTML, res.HTML},
		{params.formats.pdf, formatPDF, res.PDF},
	}
	for _, out := range outputs {
		if !out.enabled {
			continue
		}
		path, err := fileutil.ReplaceExt(job.OutputBase, out.ext)
		if err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			break
		}
		// #nosec G306 -- proposals are meant to be readable
		if err := fileutil.WriteAtomic(path, out.data, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			break
		}
		result.Outputs = append(result.Outputs, path)
	}

	result.Duration = time.Since(start)
	return result
}

// readTranscript reads a transcript file, or stdin for "-".
func readTranscript(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	if path == stdinPath {
		r = stdin
	} else {
		f, err := os.Open(path) // #nosec G304 -- discovered path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadTranscript, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxTranscriptSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTranscript, err)
	}
	if len(data) > maxTranscriptSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrReadTranscript, path, maxTranscriptSize)
	}
	return string(data), nil
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs generation results and returns the failure count
// with the first failure.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) (int, error) {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		for _, out := range r.Outputs {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%s, %d pages, %v)\n",
					r.InputPath, out, r.Category, r.Pages, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed, firstErr
}
