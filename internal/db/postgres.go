package db

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"skyward/opsportal/internal/config"
	"skyward/opsportal/internal/logging"
)

// Connect opens the sqlx handle for the configured driver. Postgres is retried
// because the container usually comes up after the API.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DBDriver == "sqlite" {
		conn, err := sqlx.ConnectContext(ctx, "sqlite3", cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite %s: %w", cfg.SQLitePath, err)
		}
		// a single writer keeps sqlite from returning SQLITE_BUSY
		conn.SetMaxOpenConns(1)
		return conn, nil
	}

	var conn *sqlx.DB
	err := retry.Do(func() error {
		var err error
		conn, err = sqlx.ConnectContext(ctx, "postgres", cfg.PostgresDSN())
		return err
	},
		retry.Context(ctx),
		retry.Attempts(10),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logging.Warn("Postgres not ready", "attempt", attempt+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)
	return conn, nil
}
