package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"wcagpal/internal/color"
	"wcagpal/internal/database"
	"wcagpal/internal/palette"
	"wcagpal/internal/ptr"
	"wcagpal/internal/types"
)

type LocalManager struct {
	db      database.Database
	version string
	logger  *zap.Logger
}

func NewLocalManager(db database.Database, version string, logger *zap.Logger) *LocalManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalManager{db: db, version: version, logger: logger}
}

var (
	ErrPaletteAlreadySaved = errors.New("a palette with this name is already saved")
	ErrPaletteNotFound     = errors.New("palette not found")
	ErrInvalidName         = errors.New("invalid palette name")
)

func (m *LocalManager) Version() string {
	return m.version
}

func (m *LocalManager) SavePalette(ctx context.Context, name string, base color.Color, mode palette.HarmonyMode, combos []palette.Combination) (types.PaletteRecord, error) {
	if name == "" {
		name = DefaultName(base, mode)
	}

	record, err := CreatePaletteRecord(name, base, mode, combos, m.version)
	if err != nil {
		return types.PaletteRecord{}, err
	}

	taken, err := m.db.IsPaletteNameTaken(ctx, record.Name)
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("unable to check: %w", err)
	}
	if taken {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteAlreadySaved, record.Name)
	}

	err = m.db.SavePalette(ctx, *record)
	if errors.Is(err, database.ErrNameTaken) {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteAlreadySaved, record.Name)
	}
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("failed to save palette: %w", err)
	}

	m.logger.Debug("palette saved",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.String("base", record.BaseColor),
		zap.String("mode", record.Mode))
	return *record, nil
}

// lookup resolves ref as an id first when it parses as a uuid, then as a name.
func (m *LocalManager) lookup(ctx context.Context, ref string) (types.PaletteRecord, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return types.PaletteRecord{}, fmt.Errorf("%w: empty reference", ErrPaletteNotFound)
	}

	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		record, err := m.db.GetPalette(ctx, ref)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, database.ErrPaletteNotFound) {
			return types.PaletteRecord{}, fmt.Errorf("unknown error occurred when getting the palette: %w", err)
		}
	}

	record, err := m.db.GetPaletteByName(ctx, ref)
	if errors.Is(err, database.ErrPaletteNotFound) {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteNotFound, ref)
	}
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("unknown error occurred when getting the palette: %w", err)
	}
	return record, nil
}

// GetPalette returns the stored snapshot, swatches included.
func (m *LocalManager) GetPalette(ctx context.Context, ref string) (types.PaletteRecord, error) {
	record, err := m.lookup(ctx, ref)
	if err != nil {
		return types.PaletteRecord{}, err
	}

	swatches, err := m.db.GetPaletteSwatches(ctx, record.ID)
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("unable to load swatches for %s: %w", record.Name, err)
	}
	record.Swatches = swatches
	return record, nil
}

func (m *LocalManager) GetAllPalettes(ctx context.Context) ([]types.PaletteRecord, error) {
	return m.db.GetAllPalettes(ctx)
}

func (m *LocalManager) RenamePalette(ctx context.Context, ref string, newName string) (types.PaletteRecord, error) {
	newName, err := ValidateName(newName)
	if err != nil {
		return types.PaletteRecord{}, err
	}

	record, err := m.lookup(ctx, ref)
	if err != nil {
		return types.PaletteRecord{}, err
	}
	if record.Name == newName {
		return record, nil
	}

	err = m.db.UpdatePalette(ctx, record.ID, database.PaletteUpdate{Name: ptr.StringPtr(newName)})
	if errors.Is(err, database.ErrNameTaken) {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteAlreadySaved, newName)
	}
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("unable to rename palette %s: %w", record.Name, err)
	}

	m.logger.Debug("palette renamed", zap.String("id", record.ID), zap.String("from", record.Name), zap.String("to", newName))
	return m.GetPalette(ctx, record.ID)
}

func (m *LocalManager) RemovePalette(ctx context.Context, ref string) (types.PaletteRecord, error) {
	record, err := m.lookup(ctx, ref)
	if err != nil {
		return types.PaletteRecord{}, err
	}

	removed, err := m.db.RemovePalette(ctx, record.ID)
	if err != nil {
		return types.PaletteRecord{}, fmt.Errorf("unable to remove the palette, got: %w", err)
	}
	if !removed {
		return types.PaletteRecord{}, fmt.Errorf("%w: %s", ErrPaletteNotFound, ref)
	}

	m.logger.Debug("palette removed", zap.String("id", record.ID), zap.String("name", record.Name))
	return record, nil
}

// IsStale reports whether record was produced by an older generator than
// the running one. Non-semver versions such as "dev" are never stale.
func (m *LocalManager) IsStale(record types.PaletteRecord) bool {
	saved, running := canonicalVersion(record.GeneratorVersion), canonicalVersion(m.version)
	if !semver.IsValid(saved) || !semver.IsValid(running) {
		return false
	}
	return semver.Compare(saved, running) < 0
}

func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
