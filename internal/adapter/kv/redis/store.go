// Package redis provides a key-value store on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// maxUpdateAttempts bounds optimistic retries when a watched key changes.
const maxUpdateAttempts = 16

// Store keeps values as plain Redis strings under a common key prefix.
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// Open connects and pings the server.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w: %w", domain.ErrUnavailable, err)
	}

	return &Store{rdb: rdb, prefix: cfg.KeyPrefix}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		return nil, mapError(err, key)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return mapError(err, key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Update reads the key under WATCH and writes the result in a MULTI block,
// retrying when another client changed the key in between.
func (s *Store) Update(ctx context.Context, key string, fn func(current []byte, found bool) ([]byte, error)) error {
	full := s.prefix + key

	var fnErr error
	txf := func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, full).Bytes()
		found := err == nil
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}

		next, err := fn(cur, found)
		if err != nil {
			fnErr = err
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, full, next, 0)
			return nil
		})
		return err
	}

	for range maxUpdateAttempts {
		fnErr = nil
		err := s.rdb.Watch(ctx, txf, full)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, goredis.TxFailedErr):
			continue
		case fnErr != nil:
			return fnErr
		default:
			return mapError(err, key)
		}
	}
	return fmt.Errorf("kv %q: %w: too many concurrent updates", key, domain.ErrConflict)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error { return s.rdb.Close() }

func mapError(err error, key string) error {
	switch {
	case errors.Is(err, goredis.Nil):
		return fmt.Errorf("kv %q: %w", key, domain.ErrNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("kv %q: %w", key, err)
	}
	return fmt.Errorf("kv %q: %w: %w", key, domain.ErrUnavailable, err)
}
