// Package color provides the color math behind the colorpick tools.
//
// Features:
//   - HSL, RGB and HEX conversions
//   - Golden-angle palette generation
//   - WCAG relative luminance, contrast ratio and conformance grading
//   - CIEDE2000 distance for perceptual spread checks
//
// All functions are pure and safe for concurrent use. The only randomness
// lives in Harmonizer, which owns its source.
package color
