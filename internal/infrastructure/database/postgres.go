package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/config"
)

// NewPostgresPool connects to the database, retrying with exponential backoff
// until cfg.ConnectTimeout elapses.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = cfg.ConnectTimeout

	ping := func() error {
		return pool.Ping(ctx)
	}
	onError := func(err error, d time.Duration) {
		logger.Warn("database not ready, retrying",
			zap.Error(err),
			zap.Duration("retry_in", d.Round(time.Millisecond)),
		)
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(retry, ctx), onError); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}
