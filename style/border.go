// Package style resolves the cascaded visual style of a cell: fill, font,
// borders, alignment, plus conditional-format differential overrides.
package style

import (
	"github.com/aerissecure/xlsxhtml/colors"
	"github.com/aerissecure/xlsxhtml/sheet"
)

// Edge is one resolved border side. WidthPx 0 means no border.
type Edge struct {
	WidthPx int
	Dash    string // solid|dashed|dotted|double
	Color   colors.RGBA
}

// borderTable maps each border style kind to its CSS-equivalent width and
// dash pair.
var borderTable = map[sheet.BorderKind]struct {
	px   int
	dash string
}{
	sheet.BorderNone:             {0, "solid"},
	sheet.BorderThin:             {1, "solid"},
	sheet.BorderHair:             {1, "solid"},
	sheet.BorderDotted:           {1, "dotted"},
	sheet.BorderDashed:           {1, "dashed"},
	sheet.BorderDashDot:          {1, "dashed"},
	sheet.BorderDashDotDot:       {1, "dotted"},
	sheet.BorderDouble:           {3, "double"},
	sheet.BorderMedium:           {2, "solid"},
	sheet.BorderMediumDashed:     {2, "dashed"},
	sheet.BorderMediumDashDot:    {2, "dashed"},
	sheet.BorderMediumDashDotDot: {2, "dotted"},
	sheet.BorderSlantDashDot:     {2, "dashed"},
	sheet.BorderThick:            {3, "solid"},
}

// DefaultEdge is the triple used for a side with no declaration: a thin solid
// line in the caller's default border color.
func DefaultEdge(def colors.RGBA) Edge {
	return Edge{WidthPx: 1, Dash: "solid", Color: def}
}

// MapEdge maps a declared border side to its (width, dash, color) triple. A
// nil side yields the default triple.
func MapEdge(e *sheet.BorderEdge, res *colors.Resolver, def colors.RGBA) Edge {
	if e == nil {
		return DefaultEdge(def)
	}
	m, ok := borderTable[e.Style]
	if !ok {
		return DefaultEdge(def)
	}
	if m.px == 0 {
		return Edge{Dash: "solid"}
	}
	return Edge{
		WidthPx: m.px,
		Dash:    m.dash,
		Color:   res.Resolve(e.Color, def, nil),
	}
}
