package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/ougirez/planstat/internal/pkg/store/xpgx"
)

const connectRetryInterval = 500 * time.Millisecond

// Retry runs connect until it succeeds, the retries are spent or ctx is done.
func Retry(ctx context.Context, retries uint64, connect func() error) error {
	attempt := 0
	return backoff.Retry(
		func() error {
			attempt++
			if err := connect(); err != nil {
				logger.Warnf(ctx, "store connect attempt %d: %s", attempt, err.Error())
				return err
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(connectRetryInterval), retries),
			ctx,
		),
	)
}

// ConnectPostgres opens a pool and waits until the database answers a ping.
func ConnectPostgres(ctx context.Context, dsn string, retries uint64) (Store, error) {
	pool, err := xpgx.NewPool(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("xpgx.NewPool: %w", err)
	}

	if err = Retry(ctx, retries, func() error { return pool.Ping(ctx) }); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return NewStore(pool), nil
}
