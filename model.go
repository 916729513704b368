package xlsxhtml

import (
	"fmt"

	"github.com/aerissecure/xlsxhtml/grid"
	"github.com/aerissecure/xlsxhtml/style"
)

// Intermediate representation produced by the render pass and consumed by the
// HTML emitter. Pixel values are floats to allow fractional widths/heights;
// grid.Auto marks sizes left to the browser.

// RenderCell is the IR for a single visible cell (merge anchor or ordinary).
type RenderCell struct {
	Ref     string // e.g. "A1"
	Value   string // already formatted value
	ColSpan int    // 1 if not merged
	RowSpan int    // 1 if not merged
	Style   style.Resolved
}

func (c RenderCell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %s, ColSpan: %d, RowSpan: %d", c.Ref, c.Value, c.ColSpan, c.RowSpan)
}

// RenderRow represents one logical row in a sheet, including synthesized
// filler rows.
type RenderRow struct {
	HeightPx float64 // resolved height in px, grid.Auto if not sized
	Hidden   bool
	// Cells has length == ColCount; only positions covered by a merge
	// without anchoring it are nil.
	Cells []*RenderCell
	// Suppressed marks grid positions covered by a merge span without
	// anchoring it; they emit nothing.
	Suppressed []bool
}

func (r RenderRow) String() string {
	return fmt.Sprintf("HeightPx: %f, Hidden: %t, Cells: %d", r.HeightPx, r.Hidden, len(r.Cells))
}

// RenderDrawing is a floating image with its resolved pixel bounding box.
type RenderDrawing struct {
	Rect        grid.Rect
	Image       []byte
	ContentType string
}

// RenderSheet is the intermediate representation of a worksheet.
type RenderSheet struct {
	Name      string
	ColWidths []float64 // per column pixel widths, grid.Auto if not sized
	ColHidden []bool
	Rows      []RenderRow
	Drawings  []RenderDrawing
}

func (s RenderSheet) String() string {
	return fmt.Sprintf("Name: %s, Cols: %d, Rows: %d, Drawings: %d", s.Name, len(s.ColWidths), len(s.Rows), len(s.Drawings))
}

// WorkbookModel is the top-level IR containing all rendered sheets.
type WorkbookModel struct {
	Sheets []RenderSheet
}
