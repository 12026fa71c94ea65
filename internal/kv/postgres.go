package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores each logical key as one row in the kv_entries table.
// The upsert makes each Set atomic per key; there is deliberately no
// transaction spanning multiple keys.
type Postgres struct {
	db db
}

// NewPostgres constructs a Postgres-backed Store.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db}
}

// Get returns the raw JSON stored under key, or domain.ErrNotFound.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_entries WHERE key = @key`

	var raw []byte
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("kv.Postgres.Get %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("kv.Postgres.Get %q: %w", key, err)
	}
	return raw, nil
}

// Set upserts the value stored under key.
func (p *Postgres) Set(ctx context.Context, key string, raw []byte) error {
	const q = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = now()`

	args := pgx.NamedArgs{"key": key, "value": raw}
	if _, err := p.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("kv.Postgres.Set %q: %w", key, err)
	}
	return nil
}
