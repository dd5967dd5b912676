// Package dbtest opens throwaway SQLite databases with the service schema for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"freelance_board/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated database living in t's temp dir. It is closed on cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := db.SQLiteDSN(filepath.Join(t.TempDir(), "test.db"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
