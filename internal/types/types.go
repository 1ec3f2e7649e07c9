package types

import (
	"time"
)

type PaletteRecord struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	BaseColor        string         `json:"baseColor" yaml:"base_color"`
	Mode             string         `json:"mode" yaml:"mode"`
	GeneratorVersion string         `json:"generatorVersion" yaml:"generator_version"`
	CreatedAt        time.Time      `json:"createdAt" yaml:"created_at"`
	UpdatedAt        *time.Time     `json:"updatedAt,omitzero" yaml:"updated_at,omitempty"`
	Swatches         []SwatchRecord `json:"swatches,omitempty" yaml:"swatches,omitempty"`
}

// SwatchRecord is a stored combination. Position 0 is always the base.
type SwatchRecord struct {
	Position      int     `json:"position" yaml:"position"`
	Label         string  `json:"label" yaml:"label"`
	Background    string  `json:"background" yaml:"background"`
	Foreground    string  `json:"foreground" yaml:"foreground"`
	ContrastRatio float64 `json:"contrastRatio" yaml:"contrast_ratio"`
	Tier          string  `json:"tier" yaml:"tier"`
	IsBase        bool    `json:"isBase" yaml:"is_base"`
}
