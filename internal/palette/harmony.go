package palette

import (
	"wcagpal/internal/color"
)

const (
	SmallGrid = 6
	LargeGrid = 9

	synthesisStep     = 10.0
	maxSynthesisSteps = 10
)

func shade(h, s, l float64) color.Color {
	return color.FromHSL(color.HSL{H: h, S: s, L: l})
}

func lighter(l, by float64) float64 {
	return min(l+by, 90)
}

func darker(l, by float64) float64 {
	return max(l-by, 10)
}

func harmonyCandidates(base color.HSL, mode HarmonyMode) []color.Color {
	h, s, l := base.H, base.S, base.L
	comp := h + 180

	switch mode {
	case Complementary:
		return []color.Color{
			shade(h, s, l),
			shade(h, s, darker(l, 15)),
			shade(h, s, lighter(l, 15)),
			shade(comp, s, l),
			shade(comp, s, darker(l, 15)),
			shade(comp, s, lighter(l, 15)),
		}

	case Analogous:
		return []color.Color{
			shade(h-30, s, l),
			shade(h-15, s, l),
			shade(h, s, l),
			shade(h+15, s, l),
			shade(h+30, s, l),
			shade(h, s, lighter(l, 15)),
			shade(h, s, darker(l, 15)),
			shade(h, s-20, l),
		}

	case Triadic:
		var candidates []color.Color
		for _, hue := range []float64{h, h + 120, h + 240} {
			candidates = append(candidates,
				shade(hue, s, l),
				shade(hue, s, lighter(l, 10)),
				shade(hue, s-10, l),
			)
		}
		return candidates

	case SplitComplementary:
		return []color.Color{
			shade(h, s, l),
			shade(h, s-10, l),
			shade(comp-30, s, l),
			shade(comp+30, s, l),
			shade(comp-30, s-10, l),
			shade(comp+30, s-10, l),
		}

	default:
		return []color.Color{
			shade(h, s, l),
			shade(h+30, s, l-10),
			shade(comp-30, s-5, l+5),
			shade(h+120, s-10, l+10),
			shade(comp, s, l),
		}
	}
}

func dedupe(candidates []color.Color) []color.Color {
	seen := make(map[color.Color]bool, len(candidates))
	unique := make([]color.Color, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}

func gridSize(count int) int {
	if count <= SmallGrid {
		return SmallGrid
	}
	return LargeGrid
}

type variant func(base color.HSL, amount float64) color.Color

var variants = []variant{
	func(b color.HSL, amount float64) color.Color { return shade(b.H, b.S, b.L+amount) },
	func(b color.HSL, amount float64) color.Color { return shade(b.H, b.S, b.L-amount) },
	func(b color.HSL, amount float64) color.Color { return shade(b.H, b.S-amount, b.L) },
}

// synthesize fills slot index with a base-hue variant not yet in seen. The
// operation for a slot is lighten, darken or desaturate by index; when that
// collides the other two are tried before the step grows.
func synthesize(base color.HSL, index int, seen map[color.Color]bool) color.Color {
	var fallback color.Color
	for step := 1; step <= maxSynthesisSteps; step++ {
		amount := float64(step) * synthesisStep
		for k := range variants {
			candidate := variants[(index+k)%len(variants)](base, amount)
			if step == 1 && k == 0 {
				fallback = candidate
			}
			if !seen[candidate] {
				return candidate
			}
		}
	}
	return fallback
}

func normalize(candidates []color.Color, base color.HSL) []color.Color {
	target := gridSize(len(candidates))
	if len(candidates) > target {
		return candidates[:target]
	}

	seen := make(map[color.Color]bool, target)
	for _, c := range candidates {
		seen[c] = true
	}
	for len(candidates) < target {
		next := synthesize(base, len(candidates), seen)
		seen[next] = true
		candidates = append(candidates, next)
	}
	return candidates
}

// placeBase moves base to the front, inserting it in place of the last entry
// when it is missing so the length never changes.
func placeBase(candidates []color.Color, base color.Color) []color.Color {
	for i, c := range candidates {
		if c != base {
			continue
		}
		if i == 0 {
			return candidates
		}
		placed := make([]color.Color, 0, len(candidates))
		placed = append(placed, base)
		placed = append(placed, candidates[:i]...)
		return append(placed, candidates[i+1:]...)
	}

	placed := make([]color.Color, 0, len(candidates))
	placed = append(placed, base)
	return append(placed, candidates[:len(candidates)-1]...)
}
