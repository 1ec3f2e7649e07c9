package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wcagpal/internal/color"
	"wcagpal/internal/palette"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

var ErrUnknownFormat = errors.New("unknown export format")

func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatHTML, FormatPNG}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatHTML, FormatPNG:
		return f, nil
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPNG
}

type Entry struct {
	Label         string  `json:"label" yaml:"label"`
	Background    string  `json:"background" yaml:"background"`
	Foreground    string  `json:"foreground" yaml:"foreground"`
	ContrastRatio float64 `json:"contrastRatio" yaml:"contrastRatio"`
	Tier          string  `json:"tier" yaml:"tier"`
	IsBase        bool    `json:"isBase" yaml:"isBase"`
}

type Document struct {
	Name         string    `json:"name,omitempty" yaml:"name,omitempty"`
	Base         string    `json:"base" yaml:"base"`
	Mode         string    `json:"mode" yaml:"mode"`
	GeneratedAt  time.Time `json:"generatedAt" yaml:"generatedAt"`
	Combinations []Entry   `json:"combinations" yaml:"combinations"`
}

// RoundRatio rounds a contrast ratio to two decimals for display and export.
func RoundRatio(v float64) float64 {
	return math.Round(v*100) / 100
}

func NewEntry(c palette.Combination) Entry {
	return Entry{
		Label:         c.Label,
		Background:    c.Background.Hex(),
		Foreground:    c.Foreground.Hex(),
		ContrastRatio: RoundRatio(c.ContrastRatio),
		Tier:          string(c.Tier),
		IsBase:        c.IsBase,
	}
}

func NewDocument(base color.Color, mode palette.HarmonyMode, combos []palette.Combination, at time.Time) Document {
	entries := make([]Entry, 0, len(combos))
	for _, c := range combos {
		entries = append(entries, NewEntry(c))
	}
	return Document{
		Base:         base.Hex(),
		Mode:         string(mode),
		GeneratedAt:  at.UTC(),
		Combinations: entries,
	}
}

func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatText:
		return writeText(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("could not encode palette as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("could not encode palette as yaml: %w", err)
		}
		return enc.Close()
	case FormatHTML:
		return writeHTML(w, doc)
	case FormatPNG:
		return writePNG(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, doc Document) error {
	blocks := make([]string, 0, len(doc.Combinations))
	for _, e := range doc.Combinations {
		blocks = append(blocks, fmt.Sprintf("%s\nBackground: %s\nText: %s\nContrast Ratio: %.2f:1\nWCAG Level: %s\n\n",
			e.Label, e.Background, e.Foreground, e.ContrastRatio, e.Tier))
	}
	if _, err := io.WriteString(w, strings.Join(blocks, "---\n\n")); err != nil {
		return fmt.Errorf("could not write text export: %w", err)
	}
	return nil
}

var stemReplacer = strings.NewReplacer("/", "-", "\\", "-", "..", "-")

// FileName builds the default output file name for a document. The name never
// contains a path separator, so it stays inside the directory it is joined to.
func FileName(doc Document, format Format) string {
	stem := doc.Name
	if stem == "" {
		stem = strings.ToLower(strings.TrimPrefix(doc.Base, "#")) + "-" + doc.Mode
	}
	return "wcag-palette-" + stemReplacer.Replace(stem) + format.Extension()
}
