package manager_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wcagpal/internal/color"
	"wcagpal/internal/database"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/testutil"
	"wcagpal/internal/types"
)

func newTestManager(t *testing.T, version string) *manager.LocalManager {
	t.Helper()
	db, _, _ := testutil.SetupTestDB(t, database.MigrationsFS, database.MigrationsPath)
	return manager.NewLocalManager(db, version, nil)
}

func savePalette(t *testing.T, mgr *manager.LocalManager, name, hex string, mode palette.HarmonyMode) types.PaletteRecord {
	t.Helper()
	base := color.FromHex(hex)
	record, err := mgr.SavePalette(t.Context(), name, base, mode, palette.Generate(base, mode))
	if err != nil {
		t.Fatalf("SavePalette failed: %v", err)
	}
	return record
}

func TestNewManager(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")

	palettes, err := mgr.GetAllPalettes(t.Context())
	if err != nil {
		t.Fatalf("GetAllPalettes shouldn't error, got: %v", err)
	}
	if len(palettes) != 0 {
		t.Errorf("Expected 0 palettes, got %d", len(palettes))
	}
	if mgr.Version() != "v1.0.0" {
		t.Errorf("Expected version v1.0.0, got %s", mgr.Version())
	}
}

func TestSavePalette_DefaultName(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")

	record := savePalette(t, mgr, "", "#1A365D", palette.Triadic)
	if record.Name != "1a365d-triadic" {
		t.Errorf("Expected default name '1a365d-triadic', got '%s'", record.Name)
	}
	if record.ID == "" {
		t.Error("Expected an id to be assigned")
	}
	if record.GeneratorVersion != "v1.0.0" {
		t.Errorf("Expected generator version v1.0.0, got %s", record.GeneratorVersion)
	}
	if len(record.Swatches) != len(palette.GenerateHex("#1A365D", palette.Triadic)) {
		t.Errorf("Unexpected swatch count %d", len(record.Swatches))
	}
}

func TestSavePalette_Duplicate(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")
	savePalette(t, mgr, "brand", "#1A365D", palette.Mixed)

	base := color.FromHex("#C71585")
	_, err := mgr.SavePalette(t.Context(), "brand", base, palette.Mixed, palette.Generate(base, palette.Mixed))
	if !errors.Is(err, manager.ErrPaletteAlreadySaved) {
		t.Fatalf("Expected ErrPaletteAlreadySaved, got %v", err)
	}
}

func TestSavePalette_RejectsForeignBase(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")

	combos := palette.GenerateHex("#1A365D", palette.Mixed)
	_, err := mgr.SavePalette(t.Context(), "wrong", color.FromHex("#FFFFFF"), palette.Mixed, combos)
	if err == nil {
		t.Fatal("Expected an error when the base does not lead the palette")
	}
}

func TestGetPalette_ByIDAndName(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")
	saved := savePalette(t, mgr, "brand", "#2E8B57", palette.Analogous)

	byID, err := mgr.GetPalette(t.Context(), saved.ID)
	if err != nil {
		t.Fatalf("GetPalette by id failed: %v", err)
	}
	byName, err := mgr.GetPalette(t.Context(), "brand")
	if err != nil {
		t.Fatalf("GetPalette by name failed: %v", err)
	}

	if byID.ID != byName.ID {
		t.Errorf("Expected the same palette, got %s and %s", byID.ID, byName.ID)
	}
	if diff := cmp.Diff(saved.Swatches, byName.Swatches); diff != "" {
		t.Errorf("Stored swatches differ (-saved +loaded):\n%s", diff)
	}
}

func TestGetPalette_NotFound(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")

	for _, ref := range []string{"missing", "5b0f3e8a-1111-4222-8333-944455556666", ""} {
		if _, err := mgr.GetPalette(t.Context(), ref); !errors.Is(err, manager.ErrPaletteNotFound) {
			t.Errorf("GetPalette(%q) expected ErrPaletteNotFound, got %v", ref, err)
		}
	}
}

func TestCombinationsRoundTrip(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")
	base := color.FromHex("#3366CC")
	combos := palette.Generate(base, palette.SplitComplementary)

	saved, err := mgr.SavePalette(t.Context(), "split", base, palette.SplitComplementary, combos)
	if err != nil {
		t.Fatalf("SavePalette failed: %v", err)
	}
	loaded, err := mgr.GetPalette(t.Context(), saved.ID)
	if err != nil {
		t.Fatalf("GetPalette failed: %v", err)
	}

	if diff := cmp.Diff(combos, manager.Combinations(loaded)); diff != "" {
		t.Errorf("Combinations changed through storage (-want +got):\n%s", diff)
	}
}

func TestRenamePalette(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")
	saved := savePalette(t, mgr, "brand", "#1A365D", palette.Mixed)
	savePalette(t, mgr, "taken", "#C71585", palette.Mixed)

	renamed, err := mgr.RenamePalette(t.Context(), "brand", "brand-navy")
	if err != nil {
		t.Fatalf("RenamePalette failed: %v", err)
	}
	if renamed.ID != saved.ID || renamed.Name != "brand-navy" {
		t.Errorf("Unexpected rename result: %+v", renamed)
	}
	if renamed.UpdatedAt == nil {
		t.Error("Expected UpdatedAt to be set after rename")
	}

	if _, err := mgr.RenamePalette(t.Context(), "brand-navy", "taken"); !errors.Is(err, manager.ErrPaletteAlreadySaved) {
		t.Errorf("Expected ErrPaletteAlreadySaved, got %v", err)
	}
	if _, err := mgr.RenamePalette(t.Context(), "brand-navy", "  "); !errors.Is(err, manager.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName for an empty name, got %v", err)
	}
	if _, err := mgr.RenamePalette(t.Context(), "nope", "other"); !errors.Is(err, manager.ErrPaletteNotFound) {
		t.Errorf("Expected ErrPaletteNotFound, got %v", err)
	}
}

func TestRemovePalette(t *testing.T) {
	mgr := newTestManager(t, "v1.0.0")
	saved := savePalette(t, mgr, "brand", "#1A365D", palette.Mixed)

	removed, err := mgr.RemovePalette(t.Context(), saved.ID)
	if err != nil {
		t.Fatalf("RemovePalette failed: %v", err)
	}
	if removed.Name != "brand" {
		t.Errorf("Expected removed palette 'brand', got '%s'", removed.Name)
	}

	if _, err := mgr.RemovePalette(t.Context(), saved.ID); !errors.Is(err, manager.ErrPaletteNotFound) {
		t.Errorf("Expected ErrPaletteNotFound on second removal, got %v", err)
	}
}

func TestIsStale(t *testing.T) {
	tests := []struct {
		name    string
		running string
		saved   string
		want    bool
	}{
		{"older patch", "v1.2.1", "v1.2.0", true},
		{"older minor without prefix", "1.3.0", "1.2.9", true},
		{"same", "v1.2.0", "v1.2.0", false},
		{"newer", "v1.2.0", "v1.4.0", false},
		{"dev build", "dev", "v0.1.0", false},
		{"unversioned record", "v1.0.0", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := manager.NewLocalManager(nil, tt.running, nil)
			if got := mgr.IsStale(types.PaletteRecord{GeneratorVersion: tt.saved}); got != tt.want {
				t.Errorf("IsStale = %v, want %v", got, tt.want)
			}
		})
	}
}
