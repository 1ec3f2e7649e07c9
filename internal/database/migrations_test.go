package database_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wcagpal/internal/database"
)

var expectedTables = []string{"palettes", "palette_swatches"}

func TestMigrations(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")
	db, rawDBConn, err := database.NewTestDB(t.Context(), dbPath, database.MigrationsFS, database.MigrationsPath)
	if err != nil {
		t.Fatalf("Unable to create test database: %v", err)
	}
	defer db.CloseDBConnection() //nolint:errcheck

	t.Log("Running up migrations...")
	if err := db.RunMigrations(database.MigrationsFS, database.MigrationsPath); err != nil {
		t.Fatalf("Failed to run up migrations: %v", err)
	}

	expectedVersion := getExpectedVersion(t, database.MigrationsPath)
	version, dirty, err := db.GetCurrentMigrationVersion(database.MigrationsFS, database.MigrationsPath)
	if err != nil {
		t.Fatalf("Failed to get current version: %v", err)
	}
	if dirty {
		t.Fatalf("Database is dirty after up migration")
	}
	if version != expectedVersion {
		t.Fatalf("Expected version %d after up migration, got version %d", expectedVersion, version)
	}

	verifyTablesExist(t, rawDBConn)
	verifyTableStructure(t, rawDBConn)
	verifyIndexExists(t, rawDBConn, 1)
	testSchemaConstraints(t, rawDBConn)

	t.Log("Running down migration...")
	if err := db.RunDownMigration(database.MigrationsFS, database.MigrationsPath); err != nil {
		t.Fatalf("Failed to run down migration: %v", err)
	}
	verifyTablesRemoved(t, rawDBConn)
	verifyIndexExists(t, rawDBConn, 0)

	t.Log("Running up migration again to test reversibility...")
	if err := db.RunMigrations(database.MigrationsFS, database.MigrationsPath); err != nil {
		t.Fatalf("Failed to run up migrations second time: %v", err)
	}

	version, dirty, err = db.GetCurrentMigrationVersion(database.MigrationsFS, database.MigrationsPath)
	if err != nil {
		t.Fatalf("Failed to get final version: %v", err)
	}
	if dirty || version != expectedVersion {
		t.Fatalf("Expected clean version %d after second up migration, got %d (dirty: %v)", expectedVersion, version, dirty)
	}
}

func getExpectedVersion(t *testing.T, migrationsDir string) uint {
	t.Helper()

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	var migrationCount uint
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".up.sql") {
			migrationCount += 1
		}
	}

	if migrationCount == 0 {
		t.Fatalf("No migrations found in directory - test cannot proceed")
	}

	return migrationCount
}

func countTables(t *testing.T, db *sql.DB, tableName string) int {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
	if err := db.QueryRow(query, tableName).Scan(&count); err != nil {
		t.Fatalf("Failed to check for table %s: %v", tableName, err)
	}
	return count
}

func verifyTablesExist(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, tableName := range expectedTables {
		if countTables(t, db, tableName) != 1 {
			t.Errorf("Expected table %s to exist, but it doesn't", tableName)
		}
	}
}

func verifyTablesRemoved(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, tableName := range expectedTables {
		if countTables(t, db, tableName) != 0 {
			t.Errorf("Expected table %s to be removed, but it still exists", tableName)
		}
	}
}

func verifyColumns(t *testing.T, db *sql.DB, table string, columns []string) {
	t.Helper()

	expected := map[string]bool{}
	for _, c := range columns {
		expected[c] = false
	}

	rows, err := db.Query(`PRAGMA table_info(` + table + `)`)
	if err != nil {
		t.Fatalf("Failed to get table info: %v", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("Failed to scan column info: %v", err)
		}
		if _, exists := expected[name]; exists {
			expected[name] = true
		}
	}

	for col, found := range expected {
		if !found {
			t.Errorf("Expected column %s not found in %s", col, table)
		}
	}
}

func verifyTableStructure(t *testing.T, db *sql.DB) {
	t.Helper()

	t.Run("palettes_structure", func(t *testing.T) {
		verifyColumns(t, db, "palettes", []string{
			"id", "name", "base_color", "mode", "generator_version", "created_at", "updated_at",
		})
	})

	t.Run("palette_swatches_structure", func(t *testing.T) {
		verifyColumns(t, db, "palette_swatches", []string{
			"palette_id", "position", "label", "background", "foreground", "contrast_ratio", "tier", "is_base",
		})
	})
}

func verifyIndexExists(t *testing.T, db *sql.DB, want int) {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?`
	if err := db.QueryRow(query, "idx_palettes_created_at").Scan(&count); err != nil {
		t.Fatalf("Failed to check for index: %v", err)
	}
	if count != want {
		t.Errorf("Expected %d index idx_palettes_created_at, found %d", want, count)
	}
}

func testSchemaConstraints(t *testing.T, db *sql.DB) {
	t.Helper()

	insertPalette := `INSERT INTO palettes (id, name, base_color, mode, created_at) VALUES (?, ?, ?, ?, datetime('now'))`
	insertSwatch := `INSERT INTO palette_swatches (palette_id, position, label, background, foreground, contrast_ratio, tier)
		VALUES (?, ?, 'Base', '#000000', '#FFFFFF', ?, ?)`

	t.Run("palettes_unique_name", func(t *testing.T) {
		if _, err := db.Exec(insertPalette, "p1", "brand", "#000000", "mixed"); err != nil {
			t.Fatalf("Failed to insert first record: %v", err)
		}
		if _, err := db.Exec(insertPalette, "p2", "brand", "#FFFFFF", "mixed"); err == nil {
			t.Error("Expected unique constraint violation on name, but insert succeeded")
		}
	})

	t.Run("palettes_not_null", func(t *testing.T) {
		if _, err := db.Exec(insertPalette, "p3", "nulls", nil, "mixed"); err == nil {
			t.Error("Expected NOT NULL constraint violation for base_color, but insert succeeded")
		}
	})

	t.Run("swatch_checks", func(t *testing.T) {
		if _, err := db.Exec(insertSwatch, "p1", 0, 21.0, "AAA"); err != nil {
			t.Fatalf("Failed to insert valid swatch: %v", err)
		}
		if _, err := db.Exec(insertSwatch, "p1", 1, 0.5, "Fail"); err == nil {
			t.Error("Expected check violation for ratio below 1")
		}
		if _, err := db.Exec(insertSwatch, "p1", 2, 3.0, "Gold"); err == nil {
			t.Error("Expected check violation for unknown tier")
		}
		if _, err := db.Exec(insertSwatch, "p1", 0, 5.0, "AA"); err == nil {
			t.Error("Expected primary key violation for repeated position")
		}
	})

	t.Run("swatch_fk_constraint", func(t *testing.T) {
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			t.Fatalf("Failed to enable foreign keys: %v", err)
		}
		if _, err := db.Exec(insertSwatch, "nonexistent", 0, 4.5, "AA"); err == nil {
			t.Error("Expected foreign key constraint violation, but insert succeeded")
		}
	})

	t.Run("cleanup", func(t *testing.T) {
		if _, err := db.Exec(`DELETE FROM palettes`); err != nil {
			t.Fatalf("Failed to clean up: %v", err)
		}
	})
}
