package testutil

import (
	"database/sql"
	"embed"
	"path/filepath"
	"testing"

	"wcagpal/internal/database"
)

func SetupTestDB(t *testing.T, migrationsFS embed.FS, migrationsPath string) (*database.DB, *sql.DB, string) {
	t.Helper()
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	db, rawConn, err := database.NewTestDB(t.Context(), dbPath, migrationsFS, migrationsPath)
	if err != nil {
		t.Fatalf("Unable to create test database: %v", err)
	}
	t.Cleanup(func() {
		db.CloseDBConnection() //nolint:errcheck
	})
	return db, rawConn, tempDir
}
