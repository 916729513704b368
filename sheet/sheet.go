// Package sheet holds the in-memory workbook model the rendering engine
// consumes. It mirrors what the parsing collaborator exposes: sparse rows and
// cells with style indexes, an indexed stylesheet, a theme color scheme,
// merge declarations, conditional formatting groups, and floating drawings.
package sheet

import "github.com/aerissecure/xlsxhtml/colors"

// Workbook is the root of the parsed model.
type Workbook struct {
	Sheets []*Sheet
	Styles *Stylesheet
	Theme  *colors.Scheme
}

// Sheet is one worksheet. Rows are ordered by index but not guaranteed
// contiguous; cells within a row are ordered by column but sparse.
type Sheet struct {
	Name               string
	Dimension          string // declared bounding range like "A1:C5", may be empty
	DefaultRowHeightPt float64
	Hidden             bool
	Rows               []*Row
	Cols               []ColDef
	Merges             []string // raw merge range declarations
	CondFmts           []RuleGroup
	Drawings           []Drawing
}

// ColDef declares width and visibility for a 1-based inclusive column range.
type ColDef struct {
	Min, Max   int
	WidthChars float64 // width in character units
	Custom     bool    // width was explicitly set
	Hidden     bool
}

// Row is one sparse worksheet row.
type Row struct {
	Index        int // 1-based
	HeightPt     float64
	CustomHeight bool
	Hidden       bool
	Style        *int // row-level style index, nil if none
	Cells        []*Cell
}

// ValueKind is the typed-value discriminator for a cell. Shared strings are
// already resolved to text by the parsing collaborator.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueNumber
	ValueDate
	ValueBool
)

// Numeric reports whether the kind renders right-aligned under "general"
// horizontal alignment.
func (k ValueKind) Numeric() bool {
	return k == ValueNumber || k == ValueDate
}

// Cell is one populated cell. Value carries the already-formatted display
// text.
type Cell struct {
	Col   int // 1-based
	Value string
	Kind  ValueKind
	Style *int // style index into Stylesheet.CellFormats, nil if none
}

// CellAt returns the cell in the given 1-based column, or nil.
func (r *Row) CellAt(col int) *Cell {
	for _, c := range r.Cells {
		if c != nil && c.Col == col {
			return c
		}
	}
	return nil
}
