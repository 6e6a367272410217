package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps voice logs in memory. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	logs   []VoiceLog
	nextID int64
	now    func() time.Time
}

// Compile-time interface implementation check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store stamping records with time.Now.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (m *MemoryStore) Create(ctx context.Context, v *VoiceLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v.ID = m.nextID
	m.nextID++
	if v.CreatedAt.IsZero() {
		v.CreatedAt = m.now().UTC()
	}
	m.logs = append(m.logs, *v)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id int64) (*VoiceLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.logs {
		if m.logs[i].ID == id {
			v := m.logs[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (m *MemoryStore) List(ctx context.Context, skip, limit int) ([]VoiceLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	skip, limit = clampPage(skip, limit)

	m.mu.RLock()
	sorted := slices.Clone(m.logs)
	m.mu.RUnlock()

	// Newest first; ties keep the later insert first, like ORDER BY
	// created_at DESC, id DESC.
	slices.SortFunc(sorted, func(a, b VoiceLog) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if skip >= len(sorted) {
		return []VoiceLog{}, nil
	}
	end := min(skip+limit, len(sorted))
	return sorted[skip:end], nil
}

func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.logs), nil
}
