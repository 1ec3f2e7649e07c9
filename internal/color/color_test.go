package color_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"wcagpal/internal/color"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  color.Color
	}{
		{"#1A365D", color.Color{R: 0x1A, G: 0x36, B: 0x5D}},
		{"#1a365d", color.Color{R: 0x1A, G: 0x36, B: 0x5D}},
		{"ffffff", color.White},
		{"#000000", color.Black},
	}

	for _, tt := range tests {
		got, err := color.ParseHex(tt.input)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "notacolor", "#fff", "#12345g", "##123456", "#1234567"} {
		_, err := color.ParseHex(input)
		if !errors.Is(err, color.ErrInvalidHex) {
			t.Errorf("ParseHex(%q) expected ErrInvalidHex, got %v", input, err)
		}
	}
}

func TestFromHex_FallsBackToBlack(t *testing.T) {
	if got := color.FromHex("notacolor"); got != color.Black {
		t.Errorf("expected black for malformed input, got %v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#FFFFFF", "#1A365D", "#7F7F7F", "#00FF00", "#abcdef", "#0a0B0c"}
	for _, input := range inputs {
		got := color.FromHex(input).Hex()
		if got != strings.ToUpper(input) {
			t.Errorf("round trip of %q gave %q", input, got)
		}
	}

	for v := 0; v < 256; v += 17 {
		c := color.Color{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
		if back := color.FromHex(c.Hex()); back != c {
			t.Errorf("round trip of %v gave %v", c, back)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 500 {
		c := color.Color{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256))}
		if back := color.FromHSL(c.HSL()); back != c {
			t.Fatalf("HSL round trip of %v gave %v (hsl %+v)", c, back, c.HSL())
		}
	}
}

func TestFromHSL_WrapsAndClamps(t *testing.T) {
	red := color.FromHSL(color.HSL{H: 0, S: 100, L: 50})
	if red != (color.Color{R: 255}) {
		t.Fatalf("expected pure red, got %v", red)
	}
	if got := color.FromHSL(color.HSL{H: 360, S: 100, L: 50}); got != red {
		t.Errorf("hue 360 should wrap to red, got %v", got)
	}
	if got := color.FromHSL(color.HSL{H: -360, S: 100, L: 50}); got != red {
		t.Errorf("hue -360 should wrap to red, got %v", got)
	}
	if got := color.FromHSL(color.HSL{H: 0, S: 150, L: 50}); got != red {
		t.Errorf("saturation above 100 should clamp, got %v", got)
	}
	if got := color.FromHSL(color.HSL{H: 200, S: -20, L: 120}); got != color.White {
		t.Errorf("lightness above 100 should clamp to white, got %v", got)
	}
}

func TestRelativeLuminance(t *testing.T) {
	if l := color.Black.RelativeLuminance(); l != 0 {
		t.Errorf("black luminance should be 0, got %f", l)
	}
	if l := color.White.RelativeLuminance(); math.Abs(l-1) > 1e-9 {
		t.Errorf("white luminance should be 1, got %f", l)
	}
	navy := color.FromHex("#1A365D").RelativeLuminance()
	if navy < 0.03 || navy > 0.04 {
		t.Errorf("expected #1A365D luminance near 0.036, got %f", navy)
	}
}

func TestContrastRatio(t *testing.T) {
	if r := color.ContrastRatio(color.Black, color.White); math.Abs(r-21) > 1e-9 {
		t.Errorf("black on white should be 21, got %f", r)
	}
	if r := color.ContrastRatio(color.White, color.White); r != 1 {
		t.Errorf("identical colors should be 1, got %f", r)
	}

	a := color.FromHex("#B91C1C")
	b := color.FromHex("#FFFFFF")
	if color.ContrastRatio(a, b) != color.ContrastRatio(b, a) {
		t.Error("contrast ratio should be symmetric")
	}
	if r := color.ContrastRatio(a, b); r < 4.5 {
		t.Errorf("dark red on white should pass AA, got %.2f", r)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{30, 270, 120},
		{0, 210, 150},
	}
	for _, tt := range tests {
		if got := color.HueDistance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		hsl := color.Random(rng).HSL()
		// 8-bit rounding moves S and L by a little
		if hsl.S < 58 || hsl.S > 100.0001 {
			t.Errorf("saturation out of range: %+v", hsl)
		}
		if hsl.L < 29 || hsl.L > 71 {
			t.Errorf("lightness out of range: %+v", hsl)
		}
	}

	first := color.Random(rand.New(rand.NewPCG(42, 42)))
	second := color.Random(rand.New(rand.NewPCG(42, 42)))
	if first != second {
		t.Errorf("same seed should give same color, got %v and %v", first, second)
	}
}
