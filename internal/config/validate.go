package config

import (
	"fmt"
	"strings"
)

const minJWTSecretLen = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Catalog.CacheSize <= 0 {
		return fmt.Errorf("catalog.cache_size must be > 0 (got %d)", c.Catalog.CacheSize)
	}

	if err := c.Chat.validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))

	switch s.Backend {
	case BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(s.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite backend")
		}
	case BackendRedis:
		if strings.TrimSpace(s.Redis.Addr) == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(s.Postgres.DSN) == "" {
			return fmt.Errorf("postgres.dsn is required for the postgres backend")
		}
		if s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns (%d) exceeds max_conns (%d)", s.Postgres.MinConns, s.Postgres.MaxConns)
		}
	default:
		return fmt.Errorf("unknown backend %q (want memory, sqlite, redis or postgres)", s.Backend)
	}
	return nil
}

func (c *ChatConfig) validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))

	switch c.Provider {
	case ProviderCanned:
	case ProviderAnthropic:
		if strings.TrimSpace(c.AnthropicAPIKey) == "" {
			return fmt.Errorf("anthropic_api_key is required for the anthropic provider")
		}
		if c.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be > 0 (got %d)", c.MaxTokens)
		}
	default:
		return fmt.Errorf("unknown provider %q (want canned or anthropic)", c.Provider)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", c.RateLimitPerMinute)
	}
	return nil
}
