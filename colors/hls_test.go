package colors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHLS_Primaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, l, s float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 1, 1, 1, 0, 1, 0},
		{"red", 1, 0, 0, 0, 0.5, 1},
		{"green", 0, 1, 0, 120, 0.5, 1},
		{"blue", 0, 0, 1, 240, 0.5, 1},
		{"yellow", 1, 1, 0, 60, 0.5, 1},
		{"gray", 0.5, 0.5, 0.5, 0, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, l, s := RGBToHLS(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.l, l, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
		})
	}
}

func TestHLSToRGB_HueWrap(t *testing.T) {
	// A hue outside [0,360) must wrap before sector lookup.
	r1, g1, b1 := HLSToRGB(30, 0.5, 1)
	r2, g2, b2 := HLSToRGB(390, 0.5, 1)
	assert.InDelta(t, r1, r2, 1e-9)
	assert.InDelta(t, g1, g2, 1e-9)
	assert.InDelta(t, b1, b2, 1e-9)
}

// Round trip over a sample of the 8-bit cube: each channel must reproduce
// within one integer step.
func TestHLSRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				h, l, s := RGBToHLS(float64(r)/255, float64(g)/255, float64(b)/255)
				rr, gg, bb := HLSToRGB(h, l, s)
				if math.Abs(rr*255-float64(r)) > 1 || math.Abs(gg*255-float64(g)) > 1 || math.Abs(bb*255-float64(b)) > 1 {
					t.Fatalf("round trip drifted for (%d,%d,%d): got (%.2f,%.2f,%.2f)",
						r, g, b, rr*255, gg*255, bb*255)
				}
			}
		}
	}
}

func TestApplyTint(t *testing.T) {
	base := RGB(64, 128, 192)

	t.Run("zero is identity", func(t *testing.T) {
		assert.Equal(t, base, ApplyTint(base, 0))
	})

	t.Run("negative darkens", func(t *testing.T) {
		darker := ApplyTint(base, -0.5)
		_, l0, _ := RGBToHLS(float64(base.R)/255, float64(base.G)/255, float64(base.B)/255)
		_, l1, _ := RGBToHLS(float64(darker.R)/255, float64(darker.G)/255, float64(darker.B)/255)
		assert.Less(t, l1, l0)
	})

	t.Run("positive lightens", func(t *testing.T) {
		lighter := ApplyTint(base, 0.5)
		_, l0, _ := RGBToHLS(float64(base.R)/255, float64(base.G)/255, float64(base.B)/255)
		_, l1, _ := RGBToHLS(float64(lighter.R)/255, float64(lighter.G)/255, float64(lighter.B)/255)
		assert.Greater(t, l1, l0)
	})

	t.Run("full negative is black", func(t *testing.T) {
		assert.Equal(t, RGB(0, 0, 0), ApplyTint(base, -1))
	})

	t.Run("full positive is white", func(t *testing.T) {
		assert.Equal(t, RGB(255, 255, 255), ApplyTint(base, 1))
	})

	t.Run("alpha preserved", func(t *testing.T) {
		c := RGBA{R: 10, G: 20, B: 30, A: 128}
		assert.Equal(t, uint8(128), ApplyTint(c, -0.3).A)
	})
}
