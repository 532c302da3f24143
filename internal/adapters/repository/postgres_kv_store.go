package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// PostgresKVStore is the durable key-value backend: a single two-column
// table with upsert semantics. Chosen over a normalized goal table on
// purpose, the engine persists the whole collection as one payload.
type PostgresKVStore struct {
	db *sqlx.DB
}

func NewPostgresKVStore(db *sqlx.DB) *PostgresKVStore {
	return &PostgresKVStore{db: db}
}

// EnsureSchema creates the kv table if it does not exist yet.
func (s *PostgresKVStore) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS kv_entries (
            key        TEXT PRIMARY KEY,
            value      TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("kv schema setup failed: %w", err)
	}
	return nil
}

func (s *PostgresKVStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("kv get %q failed: %w", key, err)
	}

	return value, nil
}

func (s *PostgresKVStore) Set(ctx context.Context, key string, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("kv set %q failed: %w", key, err)
	}
	return nil
}

func (s *PostgresKVStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv remove %q failed: %w", key, err)
	}
	return nil
}
