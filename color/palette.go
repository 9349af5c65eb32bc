package color

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// GoldenAngle is the hue step in degrees between consecutive swatches
const GoldenAngle = 137.508

// DefaultPaletteSize is used when a non-positive count is requested
const DefaultPaletteSize = 5

// Saturation and lightness bands shared by every generated palette
const (
	SaturationMin   = 60.0
	SaturationRange = 25.0
	LightnessMin    = 45.0
	LightnessRange  = 20.0
)

// Swatch is one palette entry with all representations precomputed
type Swatch struct {
	H, S, L int
	Hex     string
	RGB     RGB
}

// Palette is an ordered set of swatches from one generation call
type Palette []Swatch

// Hexes returns the hex code of each swatch in order
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Hex
	}
	return out
}

// String joins hex codes with spaces
func (p Palette) String() string {
	return strings.Join(p.Hexes(), " ")
}

// MinDistance returns the smallest pairwise CIEDE2000 distance, 0 for fewer than two swatches
func (p Palette) MinDistance() float64 {
	if len(p) < 2 {
		return 0
	}
	best := math.Inf(1)
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if d := Distance(p[i].RGB, p[j].RGB); d < best {
				best = d
			}
		}
	}
	return best
}

// Harmonizer generates golden-angle palettes from an owned random source
type Harmonizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewHarmonizer wraps rng; nil seeds a source from the clock
func NewHarmonizer(rng *rand.Rand) *Harmonizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Harmonizer{rng: rng}
}

// Harmonize picks a random base hue, saturation in [60,85] and lightness in [45,65],
// then steps the hue by GoldenAngle for each of count swatches
func (hz *Harmonizer) Harmonize(count int) Palette {
	if count <= 0 {
		count = DefaultPaletteSize
	}

	hz.mu.Lock()
	base := hz.rng.Float64() * 360
	s := SaturationMin + hz.rng.Float64()*SaturationRange
	l := LightnessMin + hz.rng.Float64()*LightnessRange
	hz.mu.Unlock()

	return Build(base, s, l, count)
}

// Build generates count swatches from fixed base hue, saturation and lightness
func Build(base, s, l float64, count int) Palette {
	p := make(Palette, 0, count)
	for i := 0; i < count; i++ {
		h := math.Mod(base+float64(i)*GoldenAngle, 360)
		if h < 0 {
			h += 360
		}
		rgb := HSLToRGB(h, s, l)
		p = append(p, Swatch{
			H:   roundInt(h) % 360,
			S:   roundInt(s),
			L:   roundInt(l),
			Hex: rgb.Hex(),
			RGB: rgb,
		})
	}
	return p
}

var defaultHarmonizer = NewHarmonizer(nil)

// Harmonize generates a palette using the package-level source
func Harmonize(count int) Palette {
	return defaultHarmonizer.Harmonize(count)
}
