package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/logger"
)

const scenarioTranscript = "Client wants an AI chatbot, budget $20k, needs it by Q1"

var fixedNow = time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)

// testEnv returns an Environment with buffered output, a fixed clock and
// stdin fed from the given text.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Context: context.Background(),
		Now:     func() time.Time { return fixedNow },
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
	}
	return env, &stdout, &stderr
}

func testParams(env *Environment, formats formatSet) *generationParams {
	return &generationParams{formats: formats, env: env, log: logger.Discard()}
}

// mockPool records inputs and answers with fn.
type mockPool struct {
	size int
	fn   func(proposal.Input) (*proposal.Result, error)

	mu     sync.Mutex
	inputs []proposal.Input
}

func (m *mockPool) Generate(_ context.Context, input proposal.Input) (*proposal.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
	return m.fn(input)
}

func (m *mockPool) Size() int { return m.size }

func okResult(input proposal.Input) (*proposal.Result, error) {
	res := &proposal.Result{
		Document: proposal.Document{Category: proposal.CategoryWeb, Markdown: "# Web\n" + input.Transcript},
	}
	if input.HTML {
		res.HTML = []byte("<html></html>")
	}
	if !input.SkipPDF {
		res.PDF = []byte("%PDF-1.4 fake")
		res.Pages = 3
	}
	return res, nil
}
