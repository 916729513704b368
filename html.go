package xlsxhtml

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/aerissecure/xlsxhtml/grid"
	"github.com/aerissecure/xlsxhtml/style"
)

// RenderWorkbookHTML converts the IR into an HTML fragment: one table per
// sheet with a shared <style> block of de-duplicated cell style classes.
func RenderWorkbookHTML(m WorkbookModel) string {
	var b strings.Builder

	// Collect unique cell styles across all sheets.
	classes := make(map[style.Resolved]string)
	var order []style.Resolved
	for _, sh := range m.Sheets {
		for _, row := range sh.Rows {
			for _, cell := range row.Cells {
				if cell == nil {
					continue
				}
				if _, ok := classes[cell.Style]; !ok {
					classes[cell.Style] = fmt.Sprintf("cellstyle%d", len(order)+1)
					order = append(order, cell.Style)
				}
			}
		}
	}

	b.WriteString("<style>\n")
	b.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; }\n")
	b.WriteString(".table td { padding: 4px 8px; white-space: nowrap; overflow: hidden; }\n")
	b.WriteString(".sheet { position: relative; margin-bottom: 2em; }\n")
	for _, st := range order {
		b.WriteString(fmt.Sprintf(".%s { %s}\n", classes[st], styleToCSS(st)))
	}
	b.WriteString("</style>\n")

	for _, sh := range m.Sheets {
		renderSheetHTML(&b, sh, classes)
	}
	return b.String()
}

func renderSheetHTML(b *strings.Builder, sh RenderSheet, classes map[style.Resolved]string) {
	fmt.Fprintf(b, "<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sh.Name))
	b.WriteString("<div style=\"width:100%;overflow-x:auto;\">\n")

	totalPx := 0.0
	sized := true
	for _, w := range sh.ColWidths {
		if w == grid.Auto {
			sized = false
			break
		}
		totalPx += w
	}
	if sized && totalPx > 0 {
		fmt.Fprintf(b, "<table class=\"table\" style=\"width:%.0fpx;\">\n", totalPx)
	} else {
		b.WriteString("<table class=\"table\">\n")
	}

	b.WriteString("  <colgroup>\n")
	for i, w := range sh.ColWidths {
		colStyle := ""
		if w != grid.Auto {
			colStyle = fmt.Sprintf(" style=\"width:%.0fpx;\"", w)
		}
		if i < len(sh.ColHidden) && sh.ColHidden[i] {
			colStyle = " style=\"display:none;\""
		}
		fmt.Fprintf(b, "    <col%s>\n", colStyle)
	}
	b.WriteString("  </colgroup>\n")

	for _, row := range sh.Rows {
		rowStyle := ""
		if row.HeightPx != grid.Auto {
			rowStyle = fmt.Sprintf("height:%.0fpx;", row.HeightPx)
		}
		if row.Hidden {
			rowStyle += "display:none;"
		}
		if rowStyle != "" {
			fmt.Fprintf(b, "  <tr style=\"%s\">\n", rowStyle)
		} else {
			b.WriteString("  <tr>\n")
		}
		for colIdx, cell := range row.Cells {
			if row.Suppressed[colIdx] {
				continue
			}
			if cell == nil {
				b.WriteString("    <td></td>\n")
				continue
			}
			spanAttr := ""
			if cell.ColSpan > 1 {
				spanAttr += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
			}
			if cell.RowSpan > 1 {
				spanAttr += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
			}
			escaped := html.EscapeString(cell.Value)
			// Explicit line breaks inside cell text survive as <br>.
			escaped = strings.ReplaceAll(escaped, "\n", "<br>")
			if cell.Style.RotationDeg != 0 {
				escaped = fmt.Sprintf("<div style=\"transform:rotate(%ddeg);\">%s</div>", cssRotation(cell.Style.RotationDeg), escaped)
			}
			fmt.Fprintf(b, "    <td data-cell=\"%s\"%s class=\"%s\">%s</td>\n",
				cell.Ref, spanAttr, classes[cell.Style], escaped)
		}
		b.WriteString("  </tr>\n")
	}
	b.WriteString("</table>\n</div>\n")

	for _, d := range sh.Drawings {
		pos := fmt.Sprintf("position:absolute;left:%.0fpx;top:%.0fpx;", d.Rect.Left, d.Rect.Top)
		if d.Rect.Width != nil {
			pos += fmt.Sprintf("width:%.0fpx;", *d.Rect.Width)
		}
		if d.Rect.Height != nil {
			pos += fmt.Sprintf("height:%.0fpx;", *d.Rect.Height)
		}
		fmt.Fprintf(b, "<img style=\"%s\" src=\"data:%s;base64,%s\">\n",
			pos, d.ContentType, base64.StdEncoding.EncodeToString(d.Image))
	}
	b.WriteString("</div>\n")
}

// cssRotation converts a spreadsheet rotation angle (counterclockwise,
// 91-180 meaning clockwise 1-90) to a CSS rotation.
func cssRotation(deg int) int {
	if deg > 90 {
		return deg - 90
	}
	return -deg
}

// styleToCSS renders a resolved style as CSS declarations.
func styleToCSS(s style.Resolved) string {
	var b strings.Builder
	if s.FontFamily != "" {
		fmt.Fprintf(&b, "font-family:'%s'; ", s.FontFamily)
	}
	if s.FontSizePx > 0 {
		fmt.Fprintf(&b, "font-size:%.1fpx; ", s.FontSizePx)
	}
	fmt.Fprintf(&b, "color:%s; ", s.FontColor.CSS())
	if s.HasFill {
		fmt.Fprintf(&b, "background-color:%s; ", s.Fill.CSS())
	}
	if s.Bold {
		b.WriteString("font-weight:bold; ")
	}
	if s.Italic {
		b.WriteString("font-style:italic; ")
	}
	if deco := textDecoration(s); deco != "" {
		fmt.Fprintf(&b, "text-decoration:%s; ", deco)
	}
	for _, e := range []struct {
		name string
		edge style.Edge
	}{
		{"left", s.Left}, {"right", s.Right}, {"top", s.Top}, {"bottom", s.Bottom},
	} {
		if e.edge.WidthPx == 0 {
			fmt.Fprintf(&b, "border-%s:none; ", e.name)
		} else {
			fmt.Fprintf(&b, "border-%s:%dpx %s %s; ", e.name, e.edge.WidthPx, e.edge.Dash, e.edge.Color.CSS())
		}
	}
	if s.HAlign != "" {
		fmt.Fprintf(&b, "text-align:%s; ", s.HAlign)
	}
	if s.VAlign != "" {
		fmt.Fprintf(&b, "vertical-align:%s; ", s.VAlign)
	}
	if s.Wrap {
		b.WriteString("white-space:normal; ")
	}
	if s.IndentPx > 0 {
		if s.HAlign == "right" {
			fmt.Fprintf(&b, "padding-right:%.0fpx; ", s.IndentPx)
		} else {
			fmt.Fprintf(&b, "padding-left:%.0fpx; ", s.IndentPx)
		}
	}
	return b.String()
}

func textDecoration(s style.Resolved) string {
	var parts []string
	if s.Underline != "" && s.Underline != "none" {
		parts = append(parts, "underline")
	}
	if s.Strike {
		parts = append(parts, "line-through")
	}
	return strings.Join(parts, " ")
}
