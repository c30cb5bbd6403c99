package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "skyward/opsportal/internal/models/gorm"
	"skyward/opsportal/internal/logging"
)

// OpenORM wraps the existing sqlx pool in gorm so both share one set of connections
func OpenORM(conn *sqlx.DB, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conn.DriverName() {
	case "postgres":
		dialector = postgres.New(postgres.Config{Conn: conn.DB})
	case "sqlite3":
		dialector = sqlite.Dialector{Conn: conn.DB}
	default:
		return nil, fmt.Errorf("unsupported driver %q", conn.DriverName())
	}

	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	orm, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm on %s: %w", conn.DriverName(), err)
	}

	logging.Info("Connected via GORM", "driver", conn.DriverName())
	return orm, nil
}

const createAPIKeysTable = `CREATE TABLE IF NOT EXISTS api_keys (
	id         VARCHAR(64) PRIMARY KEY,
	status     BOOLEAN NOT NULL DEFAULT TRUE,
	pilot_id   VARCHAR(36),
	role       VARCHAR(16) NOT NULL DEFAULT 'pilot',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Migrate creates or updates every table of the portal
func Migrate(ctx context.Context, orm *gorm.DB) error {
	if err := orm.WithContext(ctx).AutoMigrate(gormModels.AllModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if err := orm.WithContext(ctx).Exec(createAPIKeysTable).Error; err != nil {
		return fmt.Errorf("create api_keys: %w", err)
	}
	return nil
}
