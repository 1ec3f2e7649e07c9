package helpers

import (
	"strings"
	"testing"
	"time"

	"wcagpal/internal/ptr"
)

func TestDetermineSavedAt(t *testing.T) {
	if got := DetermineSavedAt(time.Time{}); got != "-" {
		t.Errorf("expected '-' for a zero time, got %q", got)
	}
	if got := DetermineSavedAt(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Errorf("expected '3 hours ago', got %q", got)
	}
}

func TestDetermineUpdatedAt(t *testing.T) {
	tests := []struct {
		name string
		in   *time.Time
		want string
	}{
		{"never renamed", nil, "-"},
		{"zero", ptr.TimePtr(time.Time{}), "-"},
		{"renamed", ptr.TimePtr(time.Now().Add(-2 * 24 * time.Hour)), "2 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineUpdatedAt(tt.in); got != tt.want {
				t.Errorf("DetermineUpdatedAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineVersion(t *testing.T) {
	if got := DetermineVersion(""); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := DetermineVersion("v1.0.0"); got != "v1.0.0" {
		t.Errorf("expected 'v1.0.0', got %q", got)
	}
}

func TestPrintPassAndStale(t *testing.T) {
	if !strings.Contains(PrintPass(true), "pass") || !strings.Contains(PrintPass(false), "fail") {
		t.Error("unexpected pass labels")
	}
	if !strings.Contains(PrintStale(true), "stale") || !strings.Contains(PrintStale(false), "current") {
		t.Error("unexpected stale labels")
	}
}
