package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MineRewards_Go/internal/claim"
	"github.com/osse101/MineRewards_Go/internal/config"
	"github.com/osse101/MineRewards_Go/internal/database"
	"github.com/osse101/MineRewards_Go/internal/database/postgres"
	"github.com/osse101/MineRewards_Go/internal/logger"
)

// ClaimStore is the claim repository plus the pool backing it, if any.
type ClaimStore struct {
	Repository claim.Repository
	Pool       *pgxpool.Pool
}

// Close releases the pool. It is a no-op for the in-memory store.
func (s *ClaimStore) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeClaimStore opens the claim store selected by CLAIM_STORE.
// The PostgreSQL store runs pending migrations before it is returned.
func InitializeClaimStore(ctx context.Context, cfg *config.Config) (*ClaimStore, error) {
	log := logger.FromContext(ctx)

	if cfg.ClaimStore == config.ClaimStoreMemory {
		log.Warn(LogMsgClaimStoreMemory)
		return &ClaimStore{Repository: claim.NewMemoryRepository()}, nil
	}

	log.Info(LogMsgClaimStorePostgres, "host", cfg.DBHost, "db", cfg.DBName, "max_conns", cfg.DBMaxConns)
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenClaimStore, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	return &ClaimStore{Repository: postgres.NewClaimRepository(pool), Pool: pool}, nil
}
