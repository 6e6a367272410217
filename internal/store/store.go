// Package store persists the voice logs delivered by the call-recording
// webhook. MemoryStore serves tests and local runs; PostgresStore is the
// production backend.
package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for store operations.
var (
	ErrNotFound        = errors.New("voice log not found")
	ErrInvalidVoiceLog = errors.New("invalid voice log")
)

// List bounds.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// VoiceLog is one recorded sales call.
type VoiceLog struct {
	ID         int64     `db:"id" json:"id"`
	VoiceID    string    `db:"elevenlabs_voice_id" json:"elevenlabs_voice_id"`
	Transcript string    `db:"transcript" json:"transcript"`
	AudioURL   string    `db:"audio_url" json:"audio_url"`
	ClientName string    `db:"client_name" json:"client_name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Validate checks the fields every backend requires.
func (v *VoiceLog) Validate() error {
	if v.VoiceID == "" {
		return errors.Join(ErrInvalidVoiceLog, errors.New("voice ID is required"))
	}
	return nil
}

// Store reads and writes voice logs.
type Store interface {
	// Create inserts v and fills its ID and, when zero, CreatedAt.
	Create(ctx context.Context, v *VoiceLog) error
	// Get returns the voice log with the given ID or ErrNotFound.
	Get(ctx context.Context, id int64) (*VoiceLog, error)
	// List returns voice logs newest first.
	List(ctx context.Context, skip, limit int) ([]VoiceLog, error)
	// Count returns the number of stored voice logs.
	Count(ctx context.Context) (int, error)
}

// clampPage normalizes list paging: negative skip is 0, limit falls in
// [1, MaxListLimit] with DefaultListLimit for zero or less.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return skip, min(limit, MaxListLimit)
}
