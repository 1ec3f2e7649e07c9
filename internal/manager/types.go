package manager

import (
	"context"

	"wcagpal/internal/color"
	"wcagpal/internal/palette"
	"wcagpal/internal/types"
)

type PaletteManager interface {
	SavePalette(ctx context.Context, name string, base color.Color, mode palette.HarmonyMode, combos []palette.Combination) (types.PaletteRecord, error)
	GetPalette(ctx context.Context, ref string) (types.PaletteRecord, error)
	GetAllPalettes(ctx context.Context) ([]types.PaletteRecord, error)
	RenamePalette(ctx context.Context, ref string, newName string) (types.PaletteRecord, error)
	RemovePalette(ctx context.Context, ref string) (types.PaletteRecord, error)

	IsStale(record types.PaletteRecord) bool
	Version() string
}

var _ PaletteManager = (*LocalManager)(nil)
