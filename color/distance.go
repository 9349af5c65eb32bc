package color

import "github.com/lucasb-eyer/go-colorful"

// Colorful converts to a go-colorful value for perceptual math
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Distance returns the CIEDE2000 color difference
// 0 means identical; ~2.3 is the just-noticeable difference
func Distance(a, b RGB) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}
