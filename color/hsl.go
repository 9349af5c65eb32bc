package color

import (
	"fmt"
	"math"
)

// HSL is a rounded hue (degrees) / saturation (%) / lightness (%) triple
type HSL struct {
	H, S, L int
}

// RGB converts back to 24-bit color
func (c HSL) RGB() RGB {
	return HSLToRGB(float64(c.H), float64(c.S), float64(c.L))
}

// String formats as CSS hsl() notation
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// HSLToRGB converts hue in degrees and saturation/lightness in percent to RGB
// Fractional inputs are accepted; out-of-range hue wraps, s and l clamp to [0,100]
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampUnit(s / 100)
	l = clampUnit(l / 100)

	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
		return uint8(math.Round(v * 255))
	}

	return RGB{R: f(0), G: f(8), B: f(4)}
}

// RGBToHSL converts using the max/min channel method
// Achromatic colors (max == min) report hue and saturation 0
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: roundInt(l * 100)}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	hue := roundInt(h * 360)
	if hue == 360 {
		hue = 0
	}
	return HSL{H: hue, S: roundInt(s * 100), L: roundInt(l * 100)}
}

func clampUnit(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
