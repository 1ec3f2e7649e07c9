// Package palette derives accessible color palettes from a single base color.
//
// A palette is a fixed-size grid (6 or 9 swatches) of background colors built
// from a color-wheel harmony around the base. Every background is paired with
// whichever of black or white text reads better on it, scored against the WCAG
// contrast thresholds and ranked so the strongest combinations come first. The
// base swatch always leads.
package palette

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"wcagpal/internal/color"
)

// Generate never fails; an unrecognised mode is treated as Mixed.
func Generate(base color.Color, mode HarmonyMode) []Combination {
	baseHSL := base.HSL()

	candidates := dedupe(harmonyCandidates(baseHSL, mode))
	candidates = normalize(candidates, baseHSL)
	candidates = placeBase(candidates, base)

	combinations := make([]Combination, 0, len(candidates))
	for i, bg := range candidates {
		fg, ratio := Evaluate(bg)
		label := "Base"
		if i > 0 {
			label = labelFor(baseHSL, bg.HSL(), mode)
		}
		combinations = append(combinations, Combination{
			Background:    bg,
			Foreground:    fg,
			Label:         label,
			ContrastRatio: ratio,
			Tier:          TierFor(ratio),
			IsBase:        i == 0,
		})
	}

	rank(combinations[1:])
	return combinations
}

// GenerateHex parses permissively, so malformed input yields a black-based palette.
func GenerateHex(hex string, mode HarmonyMode) []Combination {
	return Generate(color.FromHex(hex), mode)
}

// SeededRand returns the generator used for reproducible random palettes.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func GenerateRandom(rng *rand.Rand, mode HarmonyMode) (color.Color, []Combination) {
	base := color.Random(rng)
	return base, Generate(base, mode)
}

// Evaluate picks white or black text for bg, preferring black on a tie.
func Evaluate(bg color.Color) (color.Color, float64) {
	luminance := bg.RelativeLuminance()
	whiteContrast := color.ContrastFromLuminance(1, luminance)
	blackContrast := color.ContrastFromLuminance(0, luminance)

	if whiteContrast > blackContrast {
		return color.White, whiteContrast
	}
	return color.Black, blackContrast
}

func rank(combinations []Combination) {
	slices.SortStableFunc(combinations, func(a, b Combination) int {
		if byTier := cmp.Compare(a.Tier.rank(), b.Tier.rank()); byTier != 0 {
			return byTier
		}
		return cmp.Compare(b.ContrastRatio, a.ContrastRatio)
	})
}

func labelFor(base, candidate color.HSL, mode HarmonyMode) string {
	distance := color.HueDistance(base.H, candidate.H)

	switch {
	case distance < 15:
		if math.Abs(base.L-candidate.L) < 5 {
			return "Base"
		}
		if candidate.L > base.L {
			return "Lighter Base"
		}
		return "Darker Base"
	case math.Abs(distance-180) < 15:
		return "Complementary"
	case distance <= 40:
		return "Analogous"
	case math.Abs(distance-120) < 15:
		return "Triadic"
	case math.Abs(distance-150) < 15:
		return "Split Complementary"
	default:
		return mode.DisplayName()
	}
}
