package xlsxhtml

import (
	"github.com/aerissecure/xlsxhtml/grid"
	"github.com/aerissecure/xlsxhtml/sheet"
	"github.com/aerissecure/xlsxhtml/style"
)

// RenderModel runs one render pass over the workbook: per sheet it resolves
// the grid extent, merge spans, per-cell styles, and drawing positions into
// the intermediate representation. The only errors it returns are the
// progress callback's own; everything inside the engine degrades to defaults
// instead of failing.
func RenderModel(wb *sheet.Workbook, opts Options) (WorkbookModel, error) {
	var model WorkbookModel

	var visible []*sheet.Sheet
	for _, s := range wb.Sheets {
		if s == nil || (s.Hidden && !opts.ConvertHiddenSheets) {
			continue
		}
		visible = append(visible, s)
	}

	for si, s := range visible {
		rs, err := renderSheet(s, wb, opts, si+1, len(visible))
		if err != nil {
			return WorkbookModel{}, err
		}
		model.Sheets = append(model.Sheets, rs)
	}
	return model, nil
}

func renderSheet(s *sheet.Sheet, wb *sheet.Workbook, opts Options, sheetNum, sheetCount int) (RenderSheet, error) {
	rows, cols := grid.Extent(s)
	widths := grid.ColumnWidths(s, cols)
	heights := grid.RowHeights(s, rows)
	spans := grid.ParseSpans(s.Merges)
	rules := compileRules(s.CondFmts)

	resolver := &style.Resolver{
		Styles:   wb.Styles,
		Colors:   opts.colorResolver(wb.Theme),
		Defaults: opts.DefaultColors,
		Log:      opts.Log,
	}

	rs := RenderSheet{
		Name:      s.Name,
		ColWidths: widths,
		ColHidden: grid.ColumnHidden(s, cols),
	}
	if !opts.ConvertSize {
		for i := range rs.ColWidths {
			rs.ColWidths[i] = grid.Auto
		}
	}

	// Rows are sparse; index them so gaps synthesize as empty filler rows.
	byIndex := make(map[int]*sheet.Row, len(s.Rows))
	for _, r := range s.Rows {
		if r != nil && r.Index >= 1 {
			byIndex[r.Index] = r
		}
	}

	for rowNum := 1; rowNum <= rows; rowNum++ {
		row := byIndex[rowNum]

		rr := RenderRow{
			HeightPx:   grid.Auto,
			Cells:      make([]*RenderCell, cols),
			Suppressed: make([]bool, cols),
		}
		if opts.ConvertSize {
			rr.HeightPx = heights[rowNum-1]
		}
		if row != nil {
			rr.Hidden = row.Hidden
		}

		for colNum := 1; colNum <= cols; colNum++ {
			addr := grid.Address{Col: colNum, Row: rowNum}
			role, span := grid.Classify(addr, spans)
			if role == grid.RoleSuppressed {
				rr.Suppressed[colNum-1] = true
				continue
			}

			var cell *sheet.Cell
			if row != nil {
				cell = row.CellAt(colNum)
			}

			// Blank cells still resolve: row styles and rules matching the
			// empty string apply, and the default edges come from the class.
			rc := &RenderCell{Ref: addr.String(), ColSpan: 1, RowSpan: 1}
			if role == grid.RoleAnchor {
				rc.ColSpan = span.ColSpan()
				rc.RowSpan = span.RowSpan()
			}

			info := style.CellInfo{Row: rowNum, Col: colNum}
			if row != nil {
				info.RowStyle = row.Style
			}
			if cell != nil {
				rc.Value = cell.Value
				info.Value = cell.Value
				info.Numeric = cell.Kind.Numeric()
				info.Style = cell.Style
			}
			if opts.ConvertStyle {
				rc.Style = resolver.Resolve(info, rules)
			} else {
				rc.Style = resolver.Default(info.Numeric)
			}
			rr.Cells[colNum-1] = rc
		}

		rs.Rows = append(rs.Rows, rr)

		if opts.Progress != nil {
			if err := opts.Progress(sheetNum, sheetCount, rowNum, rows); err != nil {
				return RenderSheet{}, err
			}
		}
	}

	for _, d := range s.Drawings {
		rs.Drawings = append(rs.Drawings, RenderDrawing{
			Rect:        grid.Position(d.Anchor, widths, heights),
			Image:       d.Image,
			ContentType: d.ContentType,
		})
	}

	return rs, nil
}

// compileRules flattens conditional formatting groups into range-scoped
// rules. Groups whose range declarations fail to parse are skipped.
func compileRules(groups []sheet.RuleGroup) []style.RangeRule {
	var rules []style.RangeRule
	for _, g := range groups {
		for _, ref := range g.Ranges {
			from, to, err := grid.ParseRange(ref)
			if err != nil {
				continue
			}
			for _, rule := range g.Rules {
				rules = append(rules, style.RangeRule{
					FromRow: minInt(from.Row, to.Row),
					FromCol: minInt(from.Col, to.Col),
					ToRow:   maxInt(from.Row, to.Row),
					ToCol:   maxInt(from.Col, to.Col),
					Rule:    rule,
				})
			}
		}
	}
	return rules
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
