// Package testutil provides shared test helpers.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"faq-service/internal/config"
	"faq-service/internal/store"
)

// TestLogger discards everything below error level.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestDB creates a migrated SQLite database in the test's temp dir.
// It is closed automatically when the test ends.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.OpenSQLite(filepath.Join(t.TempDir(), "faq-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db, config.DriverSQLite, nil); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}
