package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"wcagpal/internal/config"
	"wcagpal/internal/database"
	"wcagpal/internal/manager"
	"wcagpal/internal/testutil"
)

func setupManager(t *testing.T) *manager.LocalManager {
	t.Helper()
	db, _, _ := testutil.SetupTestDB(t, database.MigrationsFS, database.MigrationsPath)
	return manager.NewLocalManager(db, "v1.2.0", nil)
}

// runCmd executes a fresh test root so flag values never leak between runs.
func runCmd(t *testing.T, mgr manager.PaletteManager, cfg config.SystemConfig, args ...string) (string, string) {
	t.Helper()
	cmd := newTestRootCmd(mgr, cfg)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("%v should not return an error, got: %v", args, err)
	}
	return stdout.String(), stderr.String()
}

func TestRootCommand(t *testing.T) {
	output, _ := runCmd(t, setupManager(t), config.Default())

	if !strings.Contains(output, "wcagpal - Test version") {
		t.Errorf("Expected output to contain 'wcagpal - Test version', got %s", output)
	}
	if !strings.Contains(output, "wcagpal help") {
		t.Errorf("Expected output to contain help text, got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, _ := runCmd(t, setupManager(t), config.Default(), "--help")

	if !strings.Contains(output, "wcagpal builds color palettes") {
		t.Errorf("Expected help to contain description, got: '%s'", output)
	}
	for _, sub := range []string{"generate", "contrast", "modes", "list", "show", "export", "rename", "remove", "serve", "system"} {
		if !strings.Contains(output, sub) {
			t.Errorf("Expected help to list %q, got: %s", sub, output)
		}
	}
}

func TestNeedsStore(t *testing.T) {
	root := newTestRootCmd(setupManager(t), config.Default())

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{}, false},
		{[]string{"generate"}, true},
		{[]string{"list"}, true},
		{[]string{"serve"}, true},
		{[]string{"contrast"}, false},
		{[]string{"modes"}, false},
		{[]string{"system", "config"}, false},
		{[]string{"system", "init"}, false},
	}

	for _, tt := range tests {
		var found *cobra.Command
		if len(tt.args) == 0 {
			found = root
		} else {
			c, _, err := root.Find(tt.args)
			if err != nil {
				t.Fatalf("could not find %v: %v", tt.args, err)
			}
			found = c
		}
		if got := needsStore(found); got != tt.want {
			t.Errorf("needsStore(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
