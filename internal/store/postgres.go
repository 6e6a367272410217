package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// Connection pool settings.
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

const schema = `
CREATE TABLE IF NOT EXISTS voice_logs (
	id                  BIGSERIAL PRIMARY KEY,
	elevenlabs_voice_id TEXT        NOT NULL,
	transcript          TEXT        NOT NULL DEFAULT '',
	audio_url           TEXT        NOT NULL DEFAULT '',
	client_name         TEXT        NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS voice_logs_voice_id_idx ON voice_logs (elevenlabs_voice_id);
CREATE INDEX IF NOT EXISTS voice_logs_created_at_idx ON voice_logs (created_at DESC);
`

// PostgresStore keeps voice logs in the voice_logs table.
type PostgresStore struct {
	db *sqlx.DB
}

// Compile-time interface implementation check.
var _ Store = (*PostgresStore)(nil)

// Connect opens a pooled PostgreSQL connection and checks it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	return db, nil
}

// NewPostgresStore wraps an open connection.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the voice_logs table and its indexes if missing.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

// Ping checks the connection, for health probes.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

func (p *PostgresStore) Create(ctx context.Context, v *VoiceLog) error {
	if err := v.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO voice_logs (elevenlabs_voice_id, transcript, audio_url, client_name, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()))
		RETURNING id, created_at
	`

	var createdAt sql.NullTime
	if !v.CreatedAt.IsZero() {
		createdAt = sql.NullTime{Time: v.CreatedAt, Valid: true}
	}

	if err := p.db.QueryRowxContext(ctx, query,
		v.VoiceID, v.Transcript, v.AudioURL, v.ClientName, createdAt,
	).Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("postgres: insert voice log: %w", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, id int64) (*VoiceLog, error) {
	var v VoiceLog
	query := `
		SELECT id, elevenlabs_voice_id, transcript, audio_url, client_name, created_at
		FROM voice_logs WHERE id = $1
	`
	if err := p.db.GetContext(ctx, &v, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("postgres: get voice log %d: %w", id, err)
	}
	return &v, nil
}

func (p *PostgresStore) List(ctx context.Context, skip, limit int) ([]VoiceLog, error) {
	skip, limit = clampPage(skip, limit)

	logs := []VoiceLog{}
	query := `
		SELECT id, elevenlabs_voice_id, transcript, audio_url, client_name, created_at
		FROM voice_logs
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`
	if err := p.db.SelectContext(ctx, &logs, query, skip, limit); err != nil {
		return nil, fmt.Errorf("postgres: list voice logs: %w", err)
	}
	return logs, nil
}

func (p *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM voice_logs`); err != nil {
		return 0, fmt.Errorf("postgres: count voice logs: %w", err)
	}
	return n, nil
}
