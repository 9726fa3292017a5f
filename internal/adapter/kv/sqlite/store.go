// Package sqlite provides a file-backed key-value store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// Store is a key-value store over a single SQLite table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database file and ensures the schema.
// Write transactions take the database lock up front so that concurrent
// Update calls serialize instead of failing with SQLITE_BUSY on upgrade.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_txlock=immediate",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the kv table when it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS kv_entries (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("sqlite ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Update runs fn inside an immediate transaction.
func (s *Store) Update(ctx context.Context, key string, fn func(current []byte, found bool) ([]byte, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err, key)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := get(ctx, tx, key)
	found := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}
	if err := s.set(ctx, tx, key, next); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapError(err, key)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q execQuerier, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, q execQuerier, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := q.ExecContext(ctx, `
INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return mapError(err, key)
	}
	return nil
}

func mapError(err error, key string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("kv %q: %w", key, domain.ErrNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("kv %q: %w", key, err)
	}
	return fmt.Errorf("kv %q: %w: %w", key, domain.ErrUnavailable, err)
}
