package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvAPIKey           = "API_KEY"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvDBMaxConnIdle    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLife    = "DB_MAX_CONN_LIFETIME"
	EnvStoreBackend     = "STORE_BACKEND"
	EnvCacheSize        = "CACHE_SIZE"
	EnvCacheTTL         = "CACHE_TTL"
	EnvTimezone         = "TIMEZONE"
	EnvRetentionDays    = "RETENTION_DAYS"
	EnvPruneInterval    = "PRUNE_INTERVAL"
	EnvBestiaryPath     = "BESTIARY_PATH"
	EnvMaxRounds        = "MAX_ROUNDS"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvEnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "skirmish"
	DefaultVersion         = "dev"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "skirmish"
	DefaultDBMaxConns      = 20
	DefaultDBMaxConnIdle   = 5 * time.Minute
	DefaultDBMaxConnLife   = 30 * time.Minute
	DefaultStoreBackend    = StoreBackendMemory
	DefaultCacheSize       = 1024
	DefaultCacheTTL        = 24 * time.Hour
	DefaultTimezone        = "UTC"
	DefaultRetentionDays   = 7
	DefaultPruneInterval   = time.Hour
	DefaultMaxRounds       = 0
	DefaultShutdownTimeout = 10 * time.Second
)

// Example values shipped in .env.example that must never reach production
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
