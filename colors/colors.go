// Package colors resolves spreadsheet color references (explicit RGB, legacy
// indexed palette, theme slots, tint derivatives) to concrete RGB values.
package colors

import (
	"fmt"
	"math"
	"strings"
)

// RGBA is a resolved color. A is 255 for fully opaque.
type RGBA struct {
	R, G, B, A uint8
}

// RGB builds an opaque color from its three channels.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as "RRGGBB" without alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// CSS returns the color as a CSS value, using rgba() when not fully opaque.
func (c RGBA) CSS() string {
	if c.A < 255 {
		return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
	}
	return "#" + strings.ToLower(c.Hex())
}

// ParseHex parses "RRGGBB" or "AARRGGBB" (the ARGB form used by spreadsheet
// color attributes), with an optional leading '#'.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color length %q", s)
	}
	var vals []uint8
	for i := 0; i+2 <= len(s); i += 2 {
		var v uint8
		if _, err := fmt.Sscanf(s[i:i+2], "%02x", &v); err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 3:
		return RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
	case 4:
		return RGBA{A: vals[0], R: vals[1], G: vals[2], B: vals[3]}, nil
	}
	return RGBA{}, fmt.Errorf("invalid hex color length %q", s)
}

// Kind discriminates the closed set of color reference encodings.
type Kind int

const (
	KindNone Kind = iota
	KindRGB
	KindIndexed
	KindTheme
)

// Ref is a color reference as found in stylesheet and theme structures. Tint
// is a post-resolution lightness adjustment in [-1,1]; zero means none.
type Ref struct {
	Kind  Kind
	Hex   string // KindRGB: "RRGGBB" or "AARRGGBB"
	Index int    // KindIndexed: index into the legacy 64-entry palette
	Slot  int    // KindTheme: slot number in the document color scheme
	Tint  float64
}

// RGBRef builds an explicit hex reference.
func RGBRef(hex string) Ref { return Ref{Kind: KindRGB, Hex: hex} }

// IndexedRef builds a palette index reference.
func IndexedRef(i int) Ref { return Ref{Kind: KindIndexed, Index: i} }

// ThemeRef builds a theme slot reference.
func ThemeRef(slot int, tint float64) Ref { return Ref{Kind: KindTheme, Slot: slot, Tint: tint} }

// ApplyTint adjusts the lightness of c by tint. Negative tint darkens by
// scaling lightness; positive tint blends lightness toward the channel
// maximum. A zero tint returns c unchanged.
func ApplyTint(c RGBA, tint float64) RGBA {
	if tint == 0 {
		return c
	}
	h, l, s := RGBToHLS(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	if tint < 0 {
		l *= 1 + tint
	} else {
		l = l*(1-tint) + tint
	}
	l = math.Max(0, math.Min(1, l))
	r, g, b := HLSToRGB(h, l, s)
	return RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: c.A,
	}
}
