package proposal

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; each render holds a whole document
	// in memory.
	MaxPoolSize = 16
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("generator pool closed")

// GeneratorPool bounds how many generations run at once. All slots share
// one Generator, built eagerly so option errors surface at construction.
type GeneratorPool struct {
	gen  *Generator
	size int
	sem  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewGeneratorPool creates a pool with n slots. n < 1 means one slot.
func NewGeneratorPool(n int, opts ...Option) (*GeneratorPool, error) {
	if n < 1 {
		n = 1
	}

	gen, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}

	return &GeneratorPool{
		gen:  gen,
		size: n,
		sem:  make(chan struct{}, n),
	}, nil
}

// Acquire takes a slot, blocking while all slots are in use. It returns
// ctx.Err() if ctx ends first and ErrPoolClosed after Close.
func (p *GeneratorPool) Acquire(ctx context.Context) (*Generator, error) {
	if p.isClosed() {
		return nil, ErrPoolClosed
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if p.isClosed() {
		<-p.sem
		return nil, ErrPoolClosed
	}
	return p.gen, nil
}

// Release returns a slot taken by Acquire.
func (p *GeneratorPool) Release(*Generator) {
	select {
	case <-p.sem:
	default:
	}
}

// Generate runs one generation in a pool slot.
func (p *GeneratorPool) Generate(ctx context.Context, input Input) (*Result, error) {
	gen, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(gen)

	return gen.Generate(ctx, input)
}

// Close stops new acquisitions. Generations in flight finish normally.
func (p *GeneratorPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *GeneratorPool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in
// containers), clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
