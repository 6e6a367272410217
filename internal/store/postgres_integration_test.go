//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPostgresStore connects to PROPOSAL_TEST_DATABASE_URL and gives the test
// an empty voice_logs table.
func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("PROPOSAL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PROPOSAL_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewPostgresStore(db)
	require.NoError(t, s.EnsureSchema(ctx))
	_, err = db.ExecContext(ctx, `TRUNCATE voice_logs RESTART IDENTITY`)
	require.NoError(t, err)
	return s
}

func TestPostgresStore(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureSchema(ctx), "schema creation is idempotent")
	require.NoError(t, s.Ping(ctx))

	v := &VoiceLog{VoiceID: "voice-1", Transcript: "crm", AudioURL: "https://example.com/a.mp3", ClientName: "Acme"}
	require.NoError(t, s.Create(ctx, v))
	assert.NotZero(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero(), "database default stamps created_at")

	got, err := s.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.ClientName)
	assert.WithinDuration(t, v.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = s.Get(ctx, v.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Create(ctx, &VoiceLog{}), ErrInvalidVoiceLog)
}

func TestPostgresStore_SeedAndList(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	n, err := Seed(ctx, s, now)
	require.NoError(t, err)
	assert.Equal(t, SampleCount, n)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, SampleCount, count)

	logs, err := s.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "TxGEqnCsz6RMkjVDRZzb", logs[0].VoiceID)
	assert.Equal(t, "XbGEqnCsz6RMkjVDRZxc", logs[1].VoiceID)

	empty, err := s.List(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
