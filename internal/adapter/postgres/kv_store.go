package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

const kvTable = "kv_entries"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// KVStore is a key-value store over the kv_entries table.
type KVStore struct {
	pool *pgxpool.Pool
	tx   *TxManager
	now  func() time.Time
}

// NewKVStore creates a KVStore on an open pool. Migrations must already be applied.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, tx: NewTxManager(pool), now: time.Now}
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, key, false)
}

// Set stores value under key, replacing any previous value.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Update runs fn on the current value inside a transaction, then stores what
// fn returns. A transaction-scoped advisory lock on the key serializes
// updates even while the row does not exist yet.
func (s *KVStore) Update(ctx context.Context, key string, fn func(current []byte, found bool) ([]byte, error)) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := QuerierFromCtx(ctx, s.pool).Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
			return mapError(err, key)
		}

		current, err := s.get(ctx, key, true)
		found := err == nil
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}
		return s.Set(ctx, key, next)
	})
}

// Ping checks connectivity.
func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Close releases the pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *KVStore) get(ctx context.Context, key string, forUpdate bool) ([]byte, error) {
	b := psql.Select("value").From(kvTable).Where(sq.Eq{"key": key})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value []byte
	err = QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("kv %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}
