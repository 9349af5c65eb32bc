package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined achromatic endpoints
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the lowercase #rrggbb form
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL converts to rounded hue/saturation/lightness
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

// String formats as CSS rgb() notation
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

const hexDigits = "0123456789abcdef"

// RGBToHex formats channels as #rrggbb with zero-padded lowercase digits
func RGBToHex(r, g, b uint8) string {
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{r, g, b} {
		buf[1+i*2] = hexDigits[v>>4]
		buf[2+i*2] = hexDigits[v&0x0f]
	}
	return string(buf[:])
}

// ParseHex parses #rgb, #rrggbb, rgb or rrggbb (case-insensitive)
// Short form expands each digit by duplication
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits, want 3 or 6", ErrInvalidHex, s, len(hex))
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// MustParseHex is ParseHex for literals known to be valid, panics otherwise
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
