package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse accepts hex (#rgb, #rrggbb, bare digits), rgb(r, g, b) and hsl(h, s%, l%)
func Parse(s string) (RGB, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")"):
		args, err := splitArgs(in[len("rgb(") : len(in)-1])
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		var ch [3]uint8
		for i, a := range args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: %q: channel %d out of range", ErrInvalidColor, s, i)
			}
			ch[i] = uint8(v)
		}
		return RGB{ch[0], ch[1], ch[2]}, nil

	case strings.HasPrefix(in, "hsl(") && strings.HasSuffix(in, ")"):
		args, err := splitArgs(in[len("hsl(") : len(in)-1])
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		var v [3]float64
		limits := [3]float64{360, 100, 100}
		for i, a := range args {
			a = strings.TrimSuffix(strings.TrimSuffix(a, "%"), "deg")
			f, err := strconv.ParseFloat(a, 64)
			// Negated form also rejects NaN
			if err != nil || !(f >= 0 && f <= limits[i]) {
				return RGB{}, fmt.Errorf("%w: %q: component %d out of range", ErrInvalidColor, s, i)
			}
			v[i] = f
		}
		return HSLToRGB(v[0], v[1], v[2]), nil
	}

	c, err := ParseHex(in)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return c, nil
}

func splitArgs(inner string) ([]string, error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
