package color

import "math"

// WCAG 2.x conformance thresholds
const (
	MinContrastAA       = 4.5
	MinContrastAALarge  = 3.0
	MinContrastAAA      = 7.0
	MinContrastAAALarge = 4.5
)

// Rating reports which WCAG levels a contrast ratio satisfies
type Rating struct {
	AA       bool // Normal text, level AA
	AALarge  bool // Large text (18pt, or 14pt bold), level AA
	AAA      bool // Normal text, level AAA
	AAALarge bool // Large text, level AAA
}

// linearize maps an sRGB channel in [0,1] to linear light
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns WCAG relative luminance in [0,1]
func Luminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio in [1,21], symmetric in its arguments
func Contrast(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// Grade maps a contrast ratio to WCAG conformance levels
func Grade(ratio float64) Rating {
	return Rating{
		AA:       ratio >= MinContrastAA,
		AALarge:  ratio >= MinContrastAALarge,
		AAA:      ratio >= MinContrastAAA,
		AAALarge: ratio >= MinContrastAAALarge,
	}
}

// Level returns the highest level met for normal text: "AAA", "AA" or "Fail"
func (r Rating) Level() string {
	switch {
	case r.AAA:
		return "AAA"
	case r.AA:
		return "AA"
	default:
		return "Fail"
	}
}

// ReadableOn picks black or white text, whichever contrasts more with bg
func ReadableOn(bg RGB) RGB {
	if Contrast(Black, bg) >= Contrast(White, bg) {
		return Black
	}
	return White
}
