package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"wcagpal/internal/palette"
)

const SwatchWidth = 22

var badgeBase = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

func TierBadge(tier palette.Tier) string {
	switch tier {
	case palette.TierAAA:
		return badgeBase.Background(ColorTierAAA).Render(string(tier))
	case palette.TierAA:
		return badgeBase.Background(ColorTierAA).Render(string(tier))
	default:
		return badgeBase.Background(ColorTierFail).Render(string(tier))
	}
}

// Swatch renders text in the combination's foreground on its background.
func Swatch(c palette.Combination, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Background.Hex())).
		Foreground(lipgloss.Color(c.Foreground.Hex())).
		Bold(c.IsBase).
		Width(SwatchWidth).
		Padding(0, 1).
		Render(text)
}

func Ratio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
