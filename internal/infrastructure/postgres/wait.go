package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

// PingFunc reports whether the database currently accepts connections.
type PingFunc func(ctx context.Context) error

// WaitFor blocks until ping succeeds, sleeping a fixed interval between
// attempts. There is no attempt limit; only ctx cancellation stops it.
func WaitFor(ctx context.Context, ping PingFunc, interval time.Duration, logger *logrus.Logger) error {
	if interval <= 0 {
		interval = time.Second
	}
	b := retry.NewConstant(interval)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := ping(ctx); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("database unavailable, waiting %s", interval)
			}
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// WaitForDB waits until a fresh connection to dsn can be opened and pinged.
func WaitForDB(ctx context.Context, dsn string, interval time.Duration, logger *logrus.Logger) error {
	return WaitFor(ctx, ConnPinger(dsn), interval, logger)
}

// ConnPinger opens a short-lived connection per attempt.
func ConnPinger(dsn string) PingFunc {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer func() { _ = conn.Close(context.Background()) }()
		return conn.Ping(ctx)
	}
}
