package manager

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wcagpal/internal/color"
	"wcagpal/internal/palette"
	"wcagpal/internal/types"
)

// DefaultName is the name a palette is saved under when none is given.
func DefaultName(base color.Color, mode palette.HarmonyMode) string {
	return strings.ToLower(strings.TrimPrefix(base.Hex(), "#")) + "-" + string(mode)
}

// ValidateName trims name and rejects names that are blank or could not be
// used as part of an export file name.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: received an empty name for the palette", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q may not contain path separators or \"..\"", ErrInvalidName, name)
	}
	return name, nil
}

func CreatePaletteRecord(name string, base color.Color, mode palette.HarmonyMode, combos []palette.Combination, version string) (*types.PaletteRecord, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return nil, fmt.Errorf("received an empty palette")
	}
	if !combos[0].IsBase || combos[0].Background != base {
		return nil, fmt.Errorf("palette does not start with its base color %s", base)
	}

	swatches := make([]types.SwatchRecord, 0, len(combos))
	for i, c := range combos {
		swatches = append(swatches, types.SwatchRecord{
			Position:      i,
			Label:         c.Label,
			Background:    c.Background.Hex(),
			Foreground:    c.Foreground.Hex(),
			ContrastRatio: c.ContrastRatio,
			Tier:          string(c.Tier),
			IsBase:        c.IsBase,
		})
	}

	return &types.PaletteRecord{
		ID:               uuid.NewString(),
		Name:             name,
		BaseColor:        base.Hex(),
		Mode:             string(mode),
		GeneratorVersion: version,
		CreatedAt:        time.Now().UTC(),
		Swatches:         swatches,
	}, nil
}

// Combinations turns stored swatches back into palette combinations.
func Combinations(record types.PaletteRecord) []palette.Combination {
	combos := make([]palette.Combination, 0, len(record.Swatches))
	for _, s := range record.Swatches {
		combos = append(combos, palette.Combination{
			Background:    color.FromHex(s.Background),
			Foreground:    color.FromHex(s.Foreground),
			Label:         s.Label,
			ContrastRatio: s.ContrastRatio,
			Tier:          palette.Tier(s.Tier),
			IsBase:        s.IsBase,
		})
	}
	return combos
}
