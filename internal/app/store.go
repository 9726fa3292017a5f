package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mazag-backend/internal/adapter/kv/memory"
	"github.com/heartmarshall/mazag-backend/internal/adapter/kv/redis"
	"github.com/heartmarshall/mazag-backend/internal/adapter/kv/sqlite"
	"github.com/heartmarshall/mazag-backend/internal/adapter/kvrepo"
	"github.com/heartmarshall/mazag-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mazag-backend/internal/config"
)

// kvStore is what the repositories and health checks need from a backend.
type kvStore interface {
	kvrepo.Store
	Ping(ctx context.Context) error
	Close() error
}

// openStore opens the configured key-value backend.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (kvStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(), nil

	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("sqlite store opened", slog.String("path", cfg.SQLite.Path))
		return s, nil

	case config.BackendRedis:
		s, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		logger.Info("redis store connected", slog.String("addr", cfg.Redis.Addr))
		return s, nil

	case config.BackendPostgres:
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN, logger); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		logger.Info("postgres store connected",
			slog.Int("max_conns", int(cfg.Postgres.MaxConns)),
			slog.Bool("auto_migrate", cfg.Postgres.AutoMigrate),
		)
		return postgres.NewKVStore(pool), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
