package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Skirmish_Go/internal/config"
	"github.com/osse101/Skirmish_Go/internal/database"
	"github.com/osse101/Skirmish_Go/internal/idle"
	"github.com/osse101/Skirmish_Go/internal/kvstore"
)

// DailyStore is the configured daily result store. DBPool is nil for the
// in-memory backend.
type DailyStore struct {
	Store  idle.AtomicStore
	Pruner idle.Pruner
	DBPool *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *DailyStore) Close() {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
}

// OpenDailyStore builds the store selected by cfg.StoreBackend. The postgres
// backend is migrated on open and fronted by an LRU cache.
func OpenDailyStore(ctx context.Context, cfg *config.Config) (*DailyStore, error) {
	if !cfg.UsesPostgres() {
		slog.Info(LogMsgUsingMemoryStore)
		mem := kvstore.NewMemory()
		return &DailyStore{Store: mem, Pruner: mem}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgUsingPostgresStore, "cache_size", cfg.CacheSize, "cache_ttl", cfg.CacheTTL)
	cached := kvstore.NewCached(kvstore.NewPostgres(pool), cfg.CacheSize, cfg.CacheTTL)
	return &DailyStore{Store: cached, Pruner: cached, DBPool: pool}, nil
}
