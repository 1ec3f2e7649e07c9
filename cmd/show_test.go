package cmd

import (
	"strings"
	"testing"

	"wcagpal/internal/config"
	"wcagpal/internal/database"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/testutil"
)

func TestShowCommand(t *testing.T) {
	mgr := setupManager(t)
	savePalette(t, mgr, "brand", "#1A365D", palette.Triadic)

	record, err := mgr.GetPalette(t.Context(), "brand")
	if err != nil {
		t.Fatalf("getting saved palette: %v", err)
	}

	for _, ref := range []string{"brand", record.ID} {
		output, errOutput := runCmd(t, mgr, config.Default(), "show", ref)
		if errOutput != "" {
			t.Fatalf("Expected no error output for %s, got: %s", ref, errOutput)
		}
		for _, want := range []string{"Palette", "brand", record.ID, "#1A365D", "Triadic", "v1.2.0", "Base"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected show %s to contain %q, got: %s", ref, want, output)
			}
		}
		if strings.Contains(output, "warning") {
			t.Errorf("Expected no stale warning, got: %s", output)
		}
	}
}

func TestShowCommand_Stale(t *testing.T) {
	db, _, _ := testutil.SetupTestDB(t, database.MigrationsFS, database.MigrationsPath)
	savePalette(t, manager.NewLocalManager(db, "v0.9.0", nil), "legacy", "#C71585", palette.Mixed)

	output, _ := runCmd(t, manager.NewLocalManager(db, "v1.0.0", nil), config.Default(), "show", "legacy")

	if !strings.Contains(output, "warning") || !strings.Contains(output, "saved with v0.9.0") {
		t.Errorf("Expected a stale warning, got: %s", output)
	}
	if !strings.Contains(output, `wcagpal generate "#C71585" --mode mixed`) {
		t.Errorf("Expected a regenerate hint, got: %s", output)
	}
}

func TestShowCommand_NotFound(t *testing.T) {
	output, errOutput := runCmd(t, setupManager(t), config.Default(), "show", "missing")

	if !strings.Contains(errOutput, "missing") || !strings.Contains(errOutput, "is not saved") {
		t.Errorf("Expected a not saved error, got: %s", errOutput)
	}
	if output != "" {
		t.Errorf("Expected no output, got: %s", output)
	}
}
