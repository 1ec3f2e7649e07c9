package palette

import (
	"errors"
	"fmt"
	"strings"

	"wcagpal/internal/color"
)

type HarmonyMode string

const (
	Complementary      HarmonyMode = "complementary"
	Analogous          HarmonyMode = "analogous"
	Triadic            HarmonyMode = "triadic"
	SplitComplementary HarmonyMode = "split-complementary"
	Mixed              HarmonyMode = "mixed"
)

var ErrUnknownMode = errors.New("unknown harmony mode")

func Modes() []HarmonyMode {
	return []HarmonyMode{Complementary, Analogous, Triadic, SplitComplementary, Mixed}
}

// ParseHarmonyMode is case-insensitive and accepts "all" for Mixed.
func ParseHarmonyMode(s string) (HarmonyMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch normalized {
	case "complementary":
		return Complementary, nil
	case "analogous":
		return Analogous, nil
	case "triadic":
		return Triadic, nil
	case "split-complementary", "splitcomplementary":
		return SplitComplementary, nil
	case "mixed", "all":
		return Mixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m HarmonyMode) DisplayName() string {
	switch m {
	case Complementary:
		return "Complementary"
	case Analogous:
		return "Analogous"
	case Triadic:
		return "Triadic"
	case SplitComplementary:
		return "Split Complementary"
	default:
		return "Mixed"
	}
}

type Tier string

const (
	TierAAA  Tier = "AAA"
	TierAA   Tier = "AA"
	TierFail Tier = "Fail"
)

const (
	AAAThreshold = 7.0
	AAThreshold  = 4.5
)

// TierFor uses the normal-text thresholds.
func TierFor(ratio float64) Tier {
	if ratio >= AAAThreshold {
		return TierAAA
	}
	if ratio >= AAThreshold {
		return TierAA
	}
	return TierFail
}

func (t Tier) rank() int {
	switch t {
	case TierAAA:
		return 0
	case TierAA:
		return 1
	default:
		return 2
	}
}

// Combination is one background swatch paired with its best foreground.
type Combination struct {
	Background    color.Color
	Foreground    color.Color
	Label         string
	ContrastRatio float64
	Tier          Tier
	IsBase        bool
}
