package proposal

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestNewGeneratorPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		wantSize int
	}{
		{name: "explicit size", n: 3, wantSize: 3},
		{name: "zero means one", n: 0, wantSize: 1},
		{name: "negative means one", n: -4, wantSize: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := NewGeneratorPool(tt.n)
			if err != nil {
				t.Fatalf("NewGeneratorPool() error = %v", err)
			}
			defer pool.Close()

			if got := pool.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
		})
	}
}

func TestNewGeneratorPool_OptionError(t *testing.T) {
	t.Parallel()

	_, err := NewGeneratorPool(2, WithAssetPath("/nonexistent/abc123xyz"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewGeneratorPool() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestGeneratorPool_AcquireBlocksWhenFull(t *testing.T) {
	t.Parallel()

	pool, err := NewGeneratorPool(1)
	if err != nil {
		t.Fatalf("NewGeneratorPool() error = %v", err)
	}
	defer pool.Close()

	gen, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := pool.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Acquire() on full pool error = %v, want DeadlineExceeded", err)
	}

	pool.Release(gen)
	gen, err = pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() after Release error = %v", err)
	}
	pool.Release(gen)
}

func TestGeneratorPool_Close(t *testing.T) {
	t.Parallel()

	pool, err := NewGeneratorPool(2)
	if err != nil {
		t.Fatalf("NewGeneratorPool() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
	if _, err := pool.Generate(context.Background(), Input{}); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Generate() after Close error = %v, want ErrPoolClosed", err)
	}
}

func TestGeneratorPool_ConcurrentGenerate(t *testing.T) {
	t.Parallel()

	pool, err := NewGeneratorPool(2, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewGeneratorPool() error = %v", err)
	}
	defer pool.Close()

	const jobs = 6
	results := make([][]byte, jobs)
	errs := make([]error, jobs)

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := pool.Generate(context.Background(), Input{Transcript: scenarioTranscript, VoiceID: "v"})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = res.PDF
		}()
	}
	wg.Wait()

	for i := range jobs {
		if errs[i] != nil {
			t.Fatalf("job %d error = %v", i, errs[i])
		}
		if string(results[i]) != string(results[0]) {
			t.Errorf("job %d produced a different PDF", i)
		}
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("ResolvePoolSize(5) = %d, want 5", got)
	}

	want := min(max(runtime.GOMAXPROCS(0), MinPoolSize), MaxPoolSize)
	if got := ResolvePoolSize(0); got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
	}
}
