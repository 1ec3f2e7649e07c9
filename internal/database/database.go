package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"wcagpal/internal/types"
)

type Database interface {
	CloseDBConnection() error

	SavePalette(ctx context.Context, record types.PaletteRecord) error
	GetPalette(ctx context.Context, id string) (types.PaletteRecord, error)
	GetPaletteByName(ctx context.Context, name string) (types.PaletteRecord, error)
	GetPaletteSwatches(ctx context.Context, id string) ([]types.SwatchRecord, error)
	GetAllPalettes(ctx context.Context) ([]types.PaletteRecord, error)
	IsPaletteNameTaken(ctx context.Context, name string) (bool, error)
	RemovePalette(ctx context.Context, id string) (bool, error)
	UpdatePalette(ctx context.Context, id string, updates PaletteUpdate) error

	RunMigrations(migrationsFS embed.FS, migrationsPath string) error
	GetCurrentMigrationVersion(migrationsFS embed.FS, migrationsPath string) (uint, bool, error)
	RunDownMigration(migrationsFS embed.FS, migrationsPath string) error
}

var _ Database = (*DB)(nil)

type DB struct {
	conn *sql.DB
}

const FileName = "palettes.db"

var (
	ErrPaletteNotFound = errors.New("palette not found")
	ErrNameTaken       = errors.New("palette name already in use")
)

func NewDB(ctx context.Context, baseDir string) (*DB, error) {
	dbPath := filepath.Join(baseDir, FileName)

	db, err := openDB(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(MigrationsFS, MigrationsPath); err != nil {
		db.conn.Close() //nolint:errcheck
		return nil, err
	}

	return db, nil
}

func NewTestDB(ctx context.Context, dbPath string, testMigrationsFS embed.FS, testMigrationsPath string) (*DB, *sql.DB, error) {
	dir := filepath.Dir(dbPath)
	err := os.MkdirAll(dir, 0750)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create test db directory: %w", err)
	}

	db, err := openDB(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := db.migrate(testMigrationsFS, testMigrationsPath); err != nil {
		db.conn.Close() //nolint:errcheck
		return nil, nil, err
	}

	return db, db.conn, nil
}

func (db *DB) migrate(migrationsFS embed.FS, migrationsPath string) error {
	if err := db.RunMigrations(migrationsFS, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	_, dirty, err := db.GetCurrentMigrationVersion(migrationsFS, migrationsPath)
	if err != nil {
		return fmt.Errorf("could not get schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state. Manual intervention required")
	}
	return nil
}

func openDB(ctx context.Context, dbPath string) (*DB, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("error closing the connection to database: %w", closeErr)
		}
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return &DB{conn: conn}, nil
}

func (db *DB) CloseDBConnection() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// SavePalette inserts the palette row and all of its swatches in one transaction.
func (db *DB) SavePalette(ctx context.Context, record types.PaletteRecord) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	paletteQuery := `
	INSERT INTO palettes (id, name, base_color, mode, generator_version, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, paletteQuery,
		record.ID, record.Name, record.BaseColor, record.Mode, record.GeneratorVersion, record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrNameTaken, record.Name)
		}
		return fmt.Errorf("could not insert palette: %w", err)
	}

	swatchQuery := `
	INSERT INTO palette_swatches (palette_id, position, label, background, foreground, contrast_ratio, tier, is_base)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, s := range record.Swatches {
		_, err = tx.ExecContext(ctx, swatchQuery,
			record.ID, s.Position, s.Label, s.Background, s.Foreground, s.ContrastRatio, s.Tier, s.IsBase)
		if err != nil {
			return fmt.Errorf("could not insert swatch %d: %w", s.Position, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit palette: %w", err)
	}
	return nil
}

const paletteColumns = `id, name, base_color, mode, generator_version, created_at, updated_at`

func scanPalette(row interface{ Scan(...any) error }) (types.PaletteRecord, error) {
	var p types.PaletteRecord
	err := row.Scan(&p.ID, &p.Name, &p.BaseColor, &p.Mode, &p.GeneratorVersion, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (db *DB) GetPalette(ctx context.Context, id string) (types.PaletteRecord, error) {
	query := `SELECT ` + paletteColumns + ` FROM palettes WHERE id = ?`

	p, err := scanPalette(db.conn.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("could not scan palette row: %w", err)
	}
	return p, nil
}

func (db *DB) GetPaletteByName(ctx context.Context, name string) (types.PaletteRecord, error) {
	query := `SELECT ` + paletteColumns + ` FROM palettes WHERE name = ?`

	p, err := scanPalette(db.conn.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteNotFound, name)
	}
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("could not scan palette row: %w", err)
	}
	return p, nil
}

func (db *DB) GetPaletteSwatches(ctx context.Context, id string) ([]types.SwatchRecord, error) {
	query := `
	SELECT position, label, background, foreground, contrast_ratio, tier, is_base
	FROM palette_swatches
	WHERE palette_id = ?
	ORDER BY position
	`

	rows, err := db.conn.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("could not query palette swatches: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var swatches []types.SwatchRecord
	for rows.Next() {
		var s types.SwatchRecord
		err := rows.Scan(&s.Position, &s.Label, &s.Background, &s.Foreground, &s.ContrastRatio, &s.Tier, &s.IsBase)
		if err != nil {
			return nil, fmt.Errorf("could not scan swatch row: %w", err)
		}
		swatches = append(swatches, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swatch rows: %w", err)
	}

	return swatches, nil
}

// GetAllPalettes lists palettes newest first, without their swatches.
func (db *DB) GetAllPalettes(ctx context.Context) ([]types.PaletteRecord, error) {
	query := `SELECT ` + paletteColumns + ` FROM palettes ORDER BY created_at DESC, name`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query saved palettes: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var palettes []types.PaletteRecord
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan palette row: %w", err)
		}
		palettes = append(palettes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating palette rows: %w", err)
	}

	return palettes, nil
}

func (db *DB) IsPaletteNameTaken(ctx context.Context, name string) (bool, error) {
	query := `
	SELECT COUNT(*)
	FROM palettes
	WHERE name = ?
	`

	var count int
	if err := db.conn.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("could not check if palette name is taken: %w", err)
	}
	return count > 0, nil
}

func (db *DB) RemovePalette(ctx context.Context, id string) (removed bool, err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM palette_swatches WHERE palette_id = ?", id); err != nil {
		return false, fmt.Errorf("could not remove palette swatches: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM palettes WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("could not remove palette: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not check rows affected: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("could not commit palette removal: %w", err)
	}
	return rowsAffected > 0, nil
}

// PaletteUpdate holds the columns that may change after a save. The mode and
// swatches are fixed once stored.
type PaletteUpdate struct {
	Name *string
}

func (db *DB) UpdatePalette(ctx context.Context, id string, updates PaletteUpdate) error {
	setParts := []string{}
	args := []any{}
	requestedColumns := []string{}
	validColumns := map[string]bool{"name": true, "updated_at": true}

	if updates.Name != nil {
		requestedColumns = append(requestedColumns, "name")
		setParts = append(setParts, "name = ?")
		args = append(args, *updates.Name)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	requestedColumns = append(requestedColumns, "updated_at")
	setParts = append(setParts, "updated_at = ?")
	args = append(args, time.Now())

	for _, col := range requestedColumns {
		if !validColumns[col] {
			return fmt.Errorf("invalid column: %s", col)
		}
	}

	// #nosec G201 - column names are from a validated allowlist
	query := fmt.Sprintf("UPDATE palettes SET %s WHERE id = ?",
		strings.Join(setParts, ", "))
	args = append(args, id)

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) && updates.Name != nil {
			return fmt.Errorf("%w: %s", ErrNameTaken, *updates.Name)
		}
		return fmt.Errorf("could not update palette: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check update result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	return nil
}
