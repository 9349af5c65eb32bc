package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, Luminance(Black), 1e-12)
	assert.InDelta(t, 1.0, Luminance(White), 1e-12)
	assert.InDelta(t, 0.2126, Luminance(RGB{255, 0, 0}), 1e-9)
	assert.InDelta(t, 0.7152, Luminance(RGB{0, 255, 0}), 1e-9)
	assert.InDelta(t, 0.0722, Luminance(RGB{0, 0, 255}), 1e-9)

	// Linear segment below the 0.03928 threshold
	assert.InDelta(t, (10.0/255)/12.92, Luminance(RGB{10, 10, 10}), 1e-12)
}

func TestContrast_Extremes(t *testing.T) {
	assert.InDelta(t, 21.0, Contrast(White, Black), 1e-9)
	assert.InDelta(t, 21.0, Contrast(Black, White), 1e-9)
}

func TestContrast_KnownPair(t *testing.T) {
	// #777777 on white is the classic just-below-AA gray
	ratio := Contrast(MustParseHex("#777777"), White)
	assert.InDelta(t, 4.48, ratio, 0.01)
}

func TestContrast_SymmetricAndSelf(t *testing.T) {
	samples := []RGB{
		Black, White,
		{255, 0, 0}, {0, 128, 0}, {18, 52, 86},
		{200, 200, 10}, {127, 127, 127}, {1, 2, 3},
	}

	for _, a := range samples {
		assert.InDelta(t, 1.0, Contrast(a, a), 1e-12, "self contrast %v", a)
		for _, b := range samples {
			ab := Contrast(a, b)
			assert.Equal(t, ab, Contrast(b, a), "%v vs %v", a, b)
			assert.GreaterOrEqual(t, ab, 1.0)
			assert.LessOrEqual(t, ab, 21.0+1e-9)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Rating
		level string
	}{
		{"Fails everything", 2.9, Rating{}, "Fail"},
		{"Large text only", 3.0, Rating{AALarge: true}, "Fail"},
		{"AA", 4.5, Rating{AA: true, AALarge: true, AAALarge: true}, "AA"},
		{"Just below AAA", 6.99, Rating{AA: true, AALarge: true, AAALarge: true}, "AA"},
		{"AAA", 7, Rating{AA: true, AALarge: true, AAA: true, AAALarge: true}, "AAA"},
		{"Maximum", 21, Rating{AA: true, AALarge: true, AAA: true, AAALarge: true}, "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.ratio)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.level, got.Level())
		})
	}
}

func TestReadableOn(t *testing.T) {
	assert.Equal(t, Black, ReadableOn(White))
	assert.Equal(t, Black, ReadableOn(RGB{255, 255, 0}))
	assert.Equal(t, White, ReadableOn(Black))
	assert.Equal(t, White, ReadableOn(RGB{0, 0, 128}))
}
