package colors

import (
	"fmt"
	"math"
	"strings"
)

// SlotEncoding discriminates the closed set of theme color encodings.
type SlotEncoding int

const (
	SlotHex        SlotEncoding = iota // srgbClr: explicit hex
	SlotSystem                         // sysClr: named system color with lastClr hint
	SlotPercentRGB                     // scrgbClr: linear RGB percentages
	SlotHSL                            // hslClr: hue/saturation/lightness
	SlotPreset                         // prstClr: named preset color
)

// Slot is one entry of a document color scheme, normalized from whichever of
// the four encodings the theme used.
type Slot struct {
	Encoding SlotEncoding
	Hex      string  // SlotHex; also the lastClr hint for SlotSystem
	R, G, B  float64 // SlotPercentRGB, channels in [0,1]
	H, S, L  float64 // SlotHSL, hue in degrees, s/l in [0,1]
	Name     string  // SlotSystem / SlotPreset
}

// Scheme is an ordered document color scheme: dk1, lt1, dk2, lt2, accent1-6,
// hlink, folHlink.
type Scheme struct {
	Slots []Slot
}

// namedColors resolves system and preset color names that appear in real
// documents. Unknown names fail resolution and fall back to the caller's
// default.
var namedColors = map[string]string{
	"window":     "FFFFFF",
	"windowtext": "000000",
	"black":      "000000",
	"white":      "FFFFFF",
	"red":        "FF0000",
	"green":      "008000",
	"blue":       "0000FF",
	"yellow":     "FFFF00",
	"cyan":       "00FFFF",
	"magenta":    "FF00FF",
	"gray":       "808080",
	"ltgray":     "C0C0C0",
	"dkgray":     "404040",
}

// Color resolves the slot at the given position to a concrete color.
func (s *Scheme) Color(slot int) (RGBA, error) {
	if s == nil || slot < 0 || slot >= len(s.Slots) {
		return RGBA{}, fmt.Errorf("theme slot %d out of range", slot)
	}
	sl := s.Slots[slot]
	switch sl.Encoding {
	case SlotHex:
		return ParseHex(sl.Hex)
	case SlotSystem:
		if sl.Hex != "" {
			return ParseHex(sl.Hex)
		}
		if hex, ok := namedColors[strings.ToLower(sl.Name)]; ok {
			return ParseHex(hex)
		}
		return RGBA{}, fmt.Errorf("unknown system color %q", sl.Name)
	case SlotPercentRGB:
		return RGBA{
			R: clampChannel(sl.R),
			G: clampChannel(sl.G),
			B: clampChannel(sl.B),
			A: 255,
		}, nil
	case SlotHSL:
		r, g, b := HLSToRGB(sl.H, sl.L, sl.S)
		return RGBA{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b), A: 255}, nil
	case SlotPreset:
		if hex, ok := namedColors[strings.ToLower(sl.Name)]; ok {
			return ParseHex(hex)
		}
		return RGBA{}, fmt.Errorf("unknown preset color %q", sl.Name)
	}
	return RGBA{}, fmt.Errorf("unsupported theme encoding %d", sl.Encoding)
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
