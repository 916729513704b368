package grid

import "github.com/aerissecure/xlsxhtml/sheet"

// Auto is the sentinel for an unspecified width or height entry: the renderer
// falls back to its default rather than a pixel value.
const Auto = -1.0

// DefaultColWidthChars is the default column width in character units.
const DefaultColWidthChars = 8.43

// DefaultRowHeightPt is the default row height in points.
const DefaultRowHeightPt = 15.0

// ColumnWidthPx converts a declared character-unit column width to pixels.
func ColumnWidthPx(chars float64) float64 {
	return (chars-1)*7 + 7
}

// RowHeightPx converts a point row height to pixels.
func RowHeightPx(pt float64) float64 {
	return pt / 0.75
}

// Extent determines the sheet's grid dimensions. The declared dimension range
// is preferred; when absent or malformed every cell is scanned for the
// maximum row and column touched.
func Extent(s *sheet.Sheet) (rows, cols int) {
	if s.Dimension != "" {
		if from, to, err := ParseRange(s.Dimension); err == nil {
			rows, cols = maxInt(from.Row, to.Row), maxInt(from.Col, to.Col)
		}
	}
	for _, r := range s.Rows {
		if r == nil {
			continue
		}
		if r.Index > rows {
			rows = r.Index
		}
		for _, c := range r.Cells {
			if c != nil && c.Col > cols {
				cols = c.Col
			}
		}
	}
	return rows, cols
}

// ColumnWidths builds the per-column pixel width table. Columns without a
// custom width carry Auto.
func ColumnWidths(s *sheet.Sheet, cols int) []float64 {
	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = Auto
	}
	for _, def := range s.Cols {
		if !def.Custom {
			continue
		}
		for c := def.Min; c <= def.Max && c <= cols; c++ {
			if c >= 1 {
				widths[c-1] = ColumnWidthPx(def.WidthChars)
			}
		}
	}
	return widths
}

// ColumnHidden builds the per-column hidden table.
func ColumnHidden(s *sheet.Sheet, cols int) []bool {
	hidden := make([]bool, cols)
	for _, def := range s.Cols {
		if !def.Hidden {
			continue
		}
		for c := def.Min; c <= def.Max && c <= cols; c++ {
			if c >= 1 {
				hidden[c-1] = true
			}
		}
	}
	return hidden
}

// RowHeights builds the per-row pixel height table. Rows without a custom
// height use the sheet's default row height.
func RowHeights(s *sheet.Sheet, rows int) []float64 {
	def := s.DefaultRowHeightPt
	if def <= 0 {
		def = DefaultRowHeightPt
	}
	heights := make([]float64, rows)
	for i := range heights {
		heights[i] = RowHeightPx(def)
	}
	for _, r := range s.Rows {
		if r == nil || r.Index < 1 || r.Index > rows {
			continue
		}
		if r.CustomHeight && r.HeightPt > 0 {
			heights[r.Index-1] = RowHeightPx(r.HeightPt)
		}
	}
	return heights
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
