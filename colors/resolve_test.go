package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefault = RGB(1, 2, 3)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"FF0000", RGB(255, 0, 0), false},
		{"#00ff00", RGB(0, 255, 0), false},
		{"80FF0000", RGBA{A: 128, R: 255}, false},
		{"xyzzy", RGBA{}, true},
		{"FFF", RGBA{}, true},
		{"FF00000", RGBA{}, true},    // trailing digit must not be dropped
		{"FF0000FF00", RGBA{}, true}, // too long
		{"", RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Explicit(t *testing.T) {
	var r Resolver
	assert.Equal(t, RGB(0x12, 0x34, 0x56), r.Resolve(RGBRef("123456"), testDefault, nil))
	// Malformed hex falls back to the default.
	assert.Equal(t, testDefault, r.Resolve(RGBRef("nothex"), testDefault, nil))
}

func TestResolve_Indexed(t *testing.T) {
	var r Resolver
	assert.Equal(t, RGB(0, 0, 0), r.Resolve(IndexedRef(0), testDefault, nil))
	assert.Equal(t, RGB(255, 255, 0), r.Resolve(IndexedRef(5), testDefault, nil))
	assert.Equal(t, RGB(0x33, 0x33, 0x33), r.Resolve(IndexedRef(63), testDefault, nil))
	// Out of range in both directions.
	assert.Equal(t, testDefault, r.Resolve(IndexedRef(64), testDefault, nil))
	assert.Equal(t, testDefault, r.Resolve(IndexedRef(-1), testDefault, nil))
}

func testScheme() *Scheme {
	return &Scheme{Slots: []Slot{
		{Encoding: SlotHex, Hex: "000000"},
		{Encoding: SlotSystem, Name: "window", Hex: "FFFFFF"},
		{Encoding: SlotHex, Hex: "44546A"},
		{Encoding: SlotPercentRGB, R: 1, G: 0.5, B: 0},
		{Encoding: SlotHSL, H: 120, S: 1, L: 0.5},
		{Encoding: SlotPreset, Name: "red"},
		{Encoding: SlotSystem, Name: "notacolor"},
	}}
}

func TestResolve_Theme(t *testing.T) {
	r := Resolver{Scheme: testScheme()}

	tests := []struct {
		name string
		slot int
		want RGBA
	}{
		{"hex", 0, RGB(0, 0, 0)},
		{"system lastClr", 1, RGB(255, 255, 255)},
		{"percent rgb", 3, RGB(255, 128, 0)},
		{"hsl", 4, RGB(0, 255, 0)},
		{"preset name", 5, RGB(255, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(ThemeRef(tt.slot, 0), testDefault, nil))
		})
	}

	t.Run("out of range", func(t *testing.T) {
		assert.Equal(t, testDefault, r.Resolve(ThemeRef(99, 0), testDefault, nil))
	})
	t.Run("unknown name", func(t *testing.T) {
		assert.Equal(t, testDefault, r.Resolve(ThemeRef(6, 0), testDefault, nil))
	})
	t.Run("no scheme", func(t *testing.T) {
		var bare Resolver
		assert.Equal(t, testDefault, bare.Resolve(ThemeRef(0, 0), testDefault, nil))
	})
}

func TestResolve_ThemeOffset(t *testing.T) {
	r := Resolver{Scheme: testScheme(), ThemeOffset: 2}
	// Slot 0 with offset 2 resolves scheme position 2.
	assert.Equal(t, RGB(0x44, 0x54, 0x6A), r.Resolve(ThemeRef(0, 0), testDefault, nil))
}

func TestResolve_ThemeTintDarkens(t *testing.T) {
	r := Resolver{Scheme: testScheme()}
	plain := r.Resolve(ThemeRef(2, 0), testDefault, nil)
	tinted := r.Resolve(ThemeRef(2, -0.5), testDefault, nil)
	_, l0, _ := RGBToHLS(float64(plain.R)/255, float64(plain.G)/255, float64(plain.B)/255)
	_, l1, _ := RGBToHLS(float64(tinted.R)/255, float64(tinted.G)/255, float64(tinted.B)/255)
	assert.Less(t, l1, l0)
}

func TestResolve_AbsentWithFallback(t *testing.T) {
	var r Resolver
	fb := IndexedRef(2) // red
	assert.Equal(t, RGB(255, 0, 0), r.Resolve(Ref{}, testDefault, &fb))

	// A broken fallback still lands on the default.
	bad := IndexedRef(200)
	assert.Equal(t, testDefault, r.Resolve(Ref{}, testDefault, &bad))

	// Absent with no fallback is the default.
	assert.Equal(t, testDefault, r.Resolve(Ref{}, testDefault, nil))
}

func TestResolve_Idempotent(t *testing.T) {
	r := Resolver{Scheme: testScheme()}
	ref := ThemeRef(3, 0.25)
	first := r.Resolve(ref, testDefault, nil)
	second := r.Resolve(ref, testDefault, nil)
	assert.Equal(t, first, second)
}
