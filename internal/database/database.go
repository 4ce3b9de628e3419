package database

import (
	"context"
	"fmt"
	"time"

	"mix-store/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ApplicationName tags the service's connections in pg_stat_activity.
const ApplicationName = "mix-store"

// NewPool connects to the remote order store. The initial ping is bounded by
// the configured connect timeout so an unreachable store fails startup fast.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := orderStorePoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger = logger.With().Str("component", "order_store").Logger()
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Dur("idle_timeout", poolCfg.MaxConnIdleTime).
		Msg("connecting to order store")

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create order store pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	start := time.Now()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach order store at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info().Dur("ping", time.Since(start)).Msg("order store ready")

	return pool, nil
}

func orderStorePoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse order store config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConnections)
	poolCfg.MinConns = int32(cfg.MinConnections)
	poolCfg.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout()
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout()
	poolCfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	return poolCfg, nil
}
