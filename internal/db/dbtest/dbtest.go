// Package dbtest opens migrated in-memory sqlite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyward/opsportal/internal/db"
)

// New returns a gorm handle and the sqlx handle sharing its connection.
// Every test gets its own named database.
func New(t testing.TB) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// one connection so that every query sees the same in-memory database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	orm, err := db.OpenORM(conn, false)
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}
	if err := db.Migrate(context.Background(), orm); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return orm, conn
}
