// Package color holds the sRGB color value used throughout wcagpal together with
// the WCAG luminance and contrast math.
package color

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB triplet.
type Color struct {
	R, G, B uint8
}

// HSL is hue in degrees [0,360) with saturation and lightness in percent [0,100].
type HSL struct {
	H, S, L float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitive.
func ParseHex(s string) (Color, error) {
	match := hexPattern.FindStringSubmatch(s)
	if match == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var channels [3]uint8
	for i, part := range match[1:] {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// FromHex is the permissive variant of ParseHex: malformed input becomes black.
func FromHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// Hex returns the canonical "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// FromHSL wraps the hue and clamps saturation and lightness before converting.
func FromHSL(hsl HSL) Color {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(hsl.S, 0, 100) / 100
	l := clamp(hsl.L, 0, 100) / 100

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance follows the WCAG 2.x definition, 0 for black and 1 for white.
func (c Color) RelativeLuminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastFromLuminance returns (lighter + 0.05) / (darker + 0.05).
func ContrastFromLuminance(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatio is symmetric and lies in [1, 21].
func ContrastRatio(a, b Color) float64 {
	return ContrastFromLuminance(a.RelativeLuminance(), b.RelativeLuminance())
}

// HueDistance is the shortest angular distance between two hues, in [0, 180].
func HueDistance(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Random draws a vibrant color: any hue, 60-100% saturation, 30-70% lightness.
func Random(rng *rand.Rand) Color {
	return FromHSL(HSL{
		H: rng.Float64() * 360,
		S: 60 + rng.Float64()*40,
		L: 30 + rng.Float64()*40,
	})
}
