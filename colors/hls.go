package colors

import "math"

// HLS conversion using the standard hexagonal bisector formulas. Hue is in
// degrees [0,360); lightness and saturation are in [0,1]. Channel inputs and
// outputs are in [0,1].

// RGBToHLS converts normalized RGB channels to (hue, lightness, saturation).
func RGBToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (maxc + minc) / 2
	if maxc == minc {
		return 0, l, 0
	}
	delta := maxc - minc
	if l <= 0.5 {
		s = delta / (maxc + minc)
	} else {
		s = delta / (2 - maxc - minc)
	}
	rc := (maxc - r) / delta
	gc := (maxc - g) / delta
	bc := (maxc - b) / delta
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h *= 60
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h, l, s
}

// HLSToRGB is the inverse of RGBToHLS via sector interpolation.
func HLSToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q2 float64
	if l <= 0.5 {
		q2 = l * (1 + s)
	} else {
		q2 = l + s - l*s
	}
	q1 := 2*l - q2
	return hueToChannel(q1, q2, h+120), hueToChannel(q1, q2, h), hueToChannel(q1, q2, h-120)
}

// hueToChannel blends between q1 and q2 for one channel. The hue argument may
// lie outside [0,360) and is wrapped before sector lookup.
func hueToChannel(q1, q2, hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	switch {
	case hue < 60:
		return q1 + (q2-q1)*hue/60
	case hue < 180:
		return q2
	case hue < 240:
		return q1 + (q2-q1)*(240-hue)/60
	default:
		return q1
	}
}
