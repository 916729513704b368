package grid

import (
	"math"

	"github.com/aerissecure/xlsxhtml/sheet"
)

// EMUPerPixel is the number of EMUs per pixel at 96 DPI: 914400 EMU per inch
// over 96 pixels per inch.
const EMUPerPixel = 914400.0 / 96.0

// EMUToPx converts EMU to pixels at 96 DPI.
func EMUToPx(emu int64) float64 {
	return float64(emu) / EMUPerPixel
}

// PtToPx converts points to pixels at 96 DPI.
func PtToPx(pt float64) float64 {
	return pt * 96 / 72
}

// Rect is a pixel bounding box. Width or Height is nil when the anchor did
// not declare an extent, letting the renderer fall back to intrinsic sizing.
type Rect struct {
	Left, Top     float64
	Width, Height *float64
}

// Position computes the pixel bounding box of a floating object from its
// anchor and the sheet's width/height tables. Auto entries in the tables
// count at their default size.
func Position(a sheet.Anchor, colWidths, rowHeights []float64) Rect {
	switch a.Kind {
	case sheet.AnchorAbsolute:
		var r Rect
		if a.Pos != nil {
			r.Left = EMUToPx(a.Pos.X)
			r.Top = EMUToPx(a.Pos.Y)
		}
		if a.Ext != nil {
			r.Width = ptr(EMUToPx(a.Ext.CX))
			r.Height = ptr(EMUToPx(a.Ext.CY))
		}
		return r

	case sheet.AnchorOneCell:
		r := Rect{}
		if a.From != nil {
			r.Left, r.Top = markerPx(*a.From, colWidths, rowHeights)
		}
		if a.Ext != nil {
			r.Width = ptr(EMUToPx(a.Ext.CX))
			r.Height = ptr(EMUToPx(a.Ext.CY))
		}
		return r

	case sheet.AnchorTwoCell:
		r := Rect{}
		if a.From == nil {
			return r
		}
		r.Left, r.Top = markerPx(*a.From, colWidths, rowHeights)
		if a.To != nil {
			right, bottom := markerPx(*a.To, colWidths, rowHeights)
			// A "to" marker before "from" still yields a positive size.
			r.Width = ptr(math.Abs(right - r.Left))
			r.Height = ptr(math.Abs(bottom - r.Top))
		}
		return r
	}
	return Rect{}
}

// markerPx converts a cell marker to absolute pixel coordinates by summing
// the width/height tables up to the marker's 0-based cell plus its intra-cell
// offset.
func markerPx(m sheet.Marker, colWidths, rowHeights []float64) (x, y float64) {
	for c := 0; c < m.Col; c++ {
		x += widthAt(colWidths, c)
	}
	x += EMUToPx(m.ColOff)
	for r := 0; r < m.Row; r++ {
		y += heightAt(rowHeights, r)
	}
	y += EMUToPx(m.RowOff)
	return x, y
}

func widthAt(widths []float64, i int) float64 {
	if i < len(widths) && widths[i] != Auto {
		return widths[i]
	}
	return ColumnWidthPx(DefaultColWidthChars)
}

func heightAt(heights []float64, i int) float64 {
	if i < len(heights) && heights[i] != Auto {
		return heights[i]
	}
	return RowHeightPx(DefaultRowHeightPt)
}

func ptr(v float64) *float64 { return &v }
