package config

import "time"

// Store backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Chat reply providers.
const (
	ProviderCanned    = "canned"
	ProviderAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Catalog CatalogConfig `yaml:"catalog"`
	Chat    ChatConfig    `yaml:"chat"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects and configures the key-value backend that holds
// onboarding profiles, bookings and reminders.
type StoreConfig struct {
	Backend  string         `yaml:"backend" env:"STORE_BACKEND" env-default:"sqlite"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds the device-local database settings.
type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"STORE_SQLITE_PATH"         env-default:"./mazag.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"STORE_SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"STORE_REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"STORE_REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"STORE_REDIS_DB"           env-default:"0"`
	KeyPrefix   string        `yaml:"key_prefix"   env:"STORE_REDIS_KEY_PREFIX"   env-default:"mazag:"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"STORE_REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"STORE_POSTGRES_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORE_POSTGRES_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"STORE_POSTGRES_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORE_POSTGRES_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"STORE_POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"STORE_POSTGRES_AUTO_MIGRATE"       env-default:"true"`
}

// CatalogConfig locates the therapist and exercise fixtures. Empty paths use
// the fixtures compiled into the binary.
type CatalogConfig struct {
	TherapistsPath string        `yaml:"therapists_path" env:"CATALOG_THERAPISTS_PATH"`
	ExercisesPath  string        `yaml:"exercises_path"  env:"CATALOG_EXERCISES_PATH"`
	CacheSize      int           `yaml:"cache_size"      env:"CATALOG_CACHE_SIZE"      env-default:"256"`
	CacheTTL       time.Duration `yaml:"cache_ttl"       env:"CATALOG_CACHE_TTL"       env-default:"5m"`
}

// ChatConfig configures the reply provider behind the chat endpoint.
type ChatConfig struct {
	Provider           string        `yaml:"provider"              env:"CHAT_PROVIDER"              env-default:"canned"`
	AnthropicAPIKey    string        `yaml:"anthropic_api_key"     env:"CHAT_ANTHROPIC_API_KEY"`
	Model              string        `yaml:"model"                 env:"CHAT_MODEL"                 env-default:"claude-3-5-haiku-latest"`
	MaxTokens          int64         `yaml:"max_tokens"            env:"CHAT_MAX_TOKENS"            env-default:"512"`
	Timeout            time.Duration `yaml:"timeout"               env:"CHAT_TIMEOUT"               env-default:"30s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"CHAT_RATE_LIMIT_PER_MINUTE" env-default:"20"`
}

// AuthConfig holds optional bearer-token settings. With no secret the API
// runs in single-device mode and every caller is anonymous.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"mazag"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Enabled reports whether bearer tokens are validated.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }
