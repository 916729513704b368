package xlsxhtml

import (
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/xlsxhtml/colors"
	"github.com/aerissecure/xlsxhtml/sheet"
)

// ParseWorkbook reads an XLSX from r/size and maps it onto the engine's
// workbook model. Malformed pieces of the file degrade to absent model
// fields; only a failure to open the package is an error.
//
// Floating drawings are not populated here: the reader does not expose the
// parsed drawing parts, so callers attach sheet.Drawing values themselves
// when they have them.
func ParseWorkbook(r io.ReaderAt, size int64) (*sheet.Workbook, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}

	out := &sheet.Workbook{
		Styles: parseStylesheet(wb.StyleSheet),
		Theme:  parseTheme(wb.Themes()),
	}
	for _, sh := range wb.Sheets() {
		out.Sheets = append(out.Sheets, parseSheet(sh, wb))
	}
	return out, nil
}

func parseSheet(sh spreadsheet.Sheet, wb *spreadsheet.Workbook) *sheet.Sheet {
	x := sh.X()
	out := &sheet.Sheet{
		Name:   sh.Name(),
		Hidden: sheetHidden(wb, sh.Name()),
	}
	if x.Dimension != nil {
		out.Dimension = x.Dimension.RefAttr
	}
	if x.SheetFormatPr != nil {
		out.DefaultRowHeightPt = x.SheetFormatPr.DefaultRowHeightAttr
	}

	for _, cols := range x.Cols {
		for _, col := range cols.Col {
			def := sheet.ColDef{
				Min: int(col.MinAttr),
				Max: int(col.MaxAttr),
			}
			if col.WidthAttr != nil {
				def.WidthChars = *col.WidthAttr
			}
			if col.CustomWidthAttr != nil {
				def.Custom = *col.CustomWidthAttr
			}
			if col.HiddenAttr != nil {
				def.Hidden = *col.HiddenAttr
			}
			out.Cols = append(out.Cols, def)
		}
	}

	for _, row := range sh.Rows() {
		rx := row.X()
		mr := &sheet.Row{
			Index:  int(row.RowNumber()),
			Hidden: row.IsHidden(),
		}
		if rx.HtAttr != nil {
			mr.HeightPt = *rx.HtAttr
		}
		if rx.CustomHeightAttr != nil {
			mr.CustomHeight = *rx.CustomHeightAttr
		}
		if rx.SAttr != nil && rx.CustomFormatAttr != nil && *rx.CustomFormatAttr {
			idx := int(*rx.SAttr)
			mr.Style = &idx
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			mc := &sheet.Cell{
				Col:   int(reference.ColumnToIndex(colName)) + 1,
				Value: cell.GetFormattedValue(),
				Kind:  cellKind(cell.X()),
			}
			if cell.X().SAttr != nil {
				idx := int(*cell.X().SAttr)
				mc.Style = &idx
			}
			mr.Cells = append(mr.Cells, mc)
		}
		out.Rows = append(out.Rows, mr)
	}

	if x.MergeCells != nil {
		for _, mc := range x.MergeCells.MergeCell {
			out.Merges = append(out.Merges, mc.RefAttr)
		}
	}

	out.CondFmts = condGroups(x.ConditionalFormatting)

	return out
}

// condGroups maps worksheet conditional formatting blocks onto rule groups.
// Blocks without a sqref or without any mappable rule are dropped.
func condGroups(fmts []*sml.CT_ConditionalFormatting) []sheet.RuleGroup {
	var groups []sheet.RuleGroup
	for _, cf := range fmts {
		if cf == nil || cf.SqrefAttr == nil {
			continue
		}
		group := sheet.RuleGroup{Ranges: []string(*cf.SqrefAttr)}
		for _, rule := range cf.CfRule {
			if rule == nil {
				continue
			}
			mapped, ok := mapCfRule(rule)
			if !ok {
				continue
			}
			group.Rules = append(group.Rules, mapped)
		}
		if len(group.Rules) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func sheetHidden(wb *spreadsheet.Workbook, name string) bool {
	if wb.X().Sheets == nil {
		return false
	}
	for _, s := range wb.X().Sheets.Sheet {
		if s != nil && s.NameAttr == name {
			state := s.StateAttr.String()
			return state == "hidden" || state == "veryHidden"
		}
	}
	return false
}

func cellKind(c *sml.CT_Cell) sheet.ValueKind {
	switch c.TAttr.String() {
	case "b":
		return sheet.ValueBool
	case "d":
		return sheet.ValueDate
	case "s", "str", "inlineStr":
		return sheet.ValueText
	default:
		// Untyped cells hold numbers when they hold anything.
		if c.V != nil && *c.V != "" {
			return sheet.ValueNumber
		}
		return sheet.ValueText
	}
}

// mapCfRule maps a conditional formatting rule onto the engine's closed
// predicate set. Rule types outside that set report false and are skipped.
func mapCfRule(rule *sml.CT_CfRule) (sheet.Rule, bool) {
	out := sheet.Rule{Priority: int(rule.PriorityAttr)}
	if rule.DxfIdAttr != nil {
		idx := int(*rule.DxfIdAttr)
		out.DiffIndex = &idx
	}
	switch rule.TypeAttr.String() {
	case "beginsWith":
		out.Pred = sheet.PredBeginsWith
	case "endsWith":
		out.Pred = sheet.PredEndsWith
	case "containsText":
		out.Pred = sheet.PredContains
	case "cellIs":
		if rule.OperatorAttr.String() != "equal" {
			return sheet.Rule{}, false
		}
		out.Pred = sheet.PredEquals
	default:
		return sheet.Rule{}, false
	}
	out.Text = cfOperand(rule)
	return out, true
}

func cfOperand(rule *sml.CT_CfRule) string {
	if rule.TextAttr != nil {
		return *rule.TextAttr
	}
	if len(rule.Formula) > 0 {
		return strings.Trim(rule.Formula[0], `"`)
	}
	return ""
}

func parseStylesheet(ss spreadsheet.StyleSheet) *sheet.Stylesheet {
	x := ss.X()
	out := &sheet.Stylesheet{}
	if x == nil {
		return out
	}

	if x.Fills != nil {
		for _, f := range x.Fills.Fill {
			out.Fills = append(out.Fills, parseFill(f))
		}
	}
	if x.Fonts != nil {
		for _, f := range x.Fonts.Font {
			out.Fonts = append(out.Fonts, parseFont(f))
		}
	}
	if x.Borders != nil {
		for _, b := range x.Borders.Border {
			out.Borders = append(out.Borders, parseBorder(b))
		}
	}
	if x.CellXfs != nil {
		for _, xf := range x.CellXfs.Xf {
			out.CellFormats = append(out.CellFormats, parseCellFormat(xf))
		}
	}
	if x.Dxfs != nil {
		for _, dxf := range x.Dxfs.Dxf {
			out.Diffs = append(out.Diffs, parseDiff(dxf))
		}
	}
	return out
}

func parseFill(f *sml.CT_Fill) sheet.Fill {
	var out sheet.Fill
	if f == nil || f.PatternFill == nil {
		out.Pattern = "none"
		return out
	}
	out.Pattern = f.PatternFill.PatternTypeAttr.String()
	out.Fg = colorRef(f.PatternFill.FgColor)
	out.Bg = colorRef(f.PatternFill.BgColor)
	return out
}

func parseFont(f *sml.CT_Font) sheet.Font {
	var out sheet.Font
	if f == nil {
		return out
	}
	if len(f.Name) > 0 && f.Name[0] != nil {
		out.Name = f.Name[0].ValAttr
	}
	if len(f.Sz) > 0 && f.Sz[0] != nil {
		out.SizePt = f.Sz[0].ValAttr
	}
	if len(f.Color) > 0 {
		out.Color = colorRef(f.Color[0])
	}
	out.Bold = boolProp(f.B)
	out.Italic = boolProp(f.I)
	out.Strike = boolProp(f.Strike)
	if len(f.U) > 0 && f.U[0] != nil {
		u := f.U[0].ValAttr.String()
		switch u {
		case "", "single":
			out.Underline = "single"
		case "none":
			out.Underline = ""
		default:
			out.Underline = u
		}
	}
	return out
}

// boolProp reads a spreadsheet boolean property element: present without a
// val attribute means true.
func boolProp(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 || props[0] == nil {
		return false
	}
	if props[0].ValAttr == nil {
		return true
	}
	return *props[0].ValAttr
}

func parseBorder(b *sml.CT_Border) sheet.Border {
	var out sheet.Border
	if b == nil {
		return out
	}
	out.Left = borderEdge(b.Left)
	out.Right = borderEdge(b.Right)
	out.Top = borderEdge(b.Top)
	out.Bottom = borderEdge(b.Bottom)
	return out
}

func borderEdge(pr *sml.CT_BorderPr) *sheet.BorderEdge {
	if pr == nil {
		return nil
	}
	kind, ok := sheet.BorderKindNamed(pr.StyleAttr.String())
	if !ok {
		return nil
	}
	return &sheet.BorderEdge{Style: kind, Color: colorRef(pr.Color)}
}

func parseCellFormat(xf *sml.CT_Xf) sheet.CellFormat {
	var out sheet.CellFormat
	if xf == nil {
		return out
	}
	out.FontID = uint32Index(xf.FontIdAttr)
	out.FillID = uint32Index(xf.FillIdAttr)
	out.BorderID = uint32Index(xf.BorderIdAttr)
	out.Alignment = parseAlignment(xf.Alignment)
	return out
}

func parseAlignment(a *sml.CT_CellAlignment) *sheet.Alignment {
	if a == nil {
		return nil
	}
	out := &sheet.Alignment{
		Horizontal: a.HorizontalAttr.String(),
		Vertical:   a.VerticalAttr.String(),
	}
	if a.WrapTextAttr != nil {
		out.Wrap = *a.WrapTextAttr
	}
	if a.TextRotationAttr != nil {
		out.RotationDeg = int(*a.TextRotationAttr)
	}
	if a.IndentAttr != nil {
		out.Indent = int(*a.IndentAttr)
	}
	return out
}

func parseDiff(dxf *sml.CT_Dxf) sheet.DiffFormat {
	var out sheet.DiffFormat
	if dxf == nil {
		return out
	}
	if dxf.Fill != nil {
		fill := parseFill(dxf.Fill)
		out.Fill = &fill
	}
	if dxf.Font != nil {
		out.Font = fontPatch(dxf.Font)
	}
	if dxf.Border != nil {
		border := parseBorder(dxf.Border)
		out.Border = &border
	}
	if dxf.Alignment != nil {
		out.Alignment = parseAlignment(dxf.Alignment)
	}
	return out
}

// fontPatch keeps only the font fields the differential actually declares.
func fontPatch(f *sml.CT_Font) *sheet.FontPatch {
	out := &sheet.FontPatch{}
	if len(f.Name) > 0 && f.Name[0] != nil {
		out.Name = &f.Name[0].ValAttr
	}
	if len(f.Sz) > 0 && f.Sz[0] != nil {
		out.SizePt = &f.Sz[0].ValAttr
	}
	if len(f.Color) > 0 && f.Color[0] != nil {
		ref := colorRef(f.Color[0])
		out.Color = &ref
	}
	if len(f.B) > 0 {
		v := boolProp(f.B)
		out.Bold = &v
	}
	if len(f.I) > 0 {
		v := boolProp(f.I)
		out.Italic = &v
	}
	if len(f.Strike) > 0 {
		v := boolProp(f.Strike)
		out.Strike = &v
	}
	if len(f.U) > 0 && f.U[0] != nil {
		u := f.U[0].ValAttr.String()
		if u == "" {
			u = "single"
		}
		if u == "none" {
			u = ""
		}
		out.Underline = &u
	}
	return out
}

func colorRef(c *sml.CT_Color) colors.Ref {
	if c == nil {
		return colors.Ref{}
	}
	var ref colors.Ref
	switch {
	case c.RgbAttr != nil && *c.RgbAttr != "":
		ref = colors.RGBRef(*c.RgbAttr)
	case c.IndexedAttr != nil:
		ref = colors.IndexedRef(int(*c.IndexedAttr))
	case c.ThemeAttr != nil:
		ref = colors.ThemeRef(int(*c.ThemeAttr), 0)
	default:
		return colors.Ref{}
	}
	if c.TintAttr != nil {
		ref.Tint = *c.TintAttr
	}
	return ref
}

func uint32Index(v *uint32) *int {
	if v == nil {
		return nil
	}
	idx := int(*v)
	return &idx
}

// parseTheme maps the first document theme's color scheme onto the engine's
// ordered slots: dk1, lt1, dk2, lt2, accent1-6, hlink, folHlink.
func parseTheme(themes []*dml.Theme) *colors.Scheme {
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil {
		return nil
	}
	cs := themes[0].ThemeElements.ClrScheme
	if cs == nil {
		return nil
	}
	ordered := []*dml.CT_Color{
		cs.Dk1, cs.Lt1, cs.Dk2, cs.Lt2,
		cs.Accent1, cs.Accent2, cs.Accent3, cs.Accent4, cs.Accent5, cs.Accent6,
		cs.Hlink, cs.FolHlink,
	}
	scheme := &colors.Scheme{Slots: make([]colors.Slot, len(ordered))}
	for i, clr := range ordered {
		scheme.Slots[i] = themeSlot(clr)
	}
	return scheme
}

func themeSlot(clr *dml.CT_Color) colors.Slot {
	if clr == nil {
		return colors.Slot{Encoding: colors.SlotPreset, Name: ""}
	}
	switch {
	case clr.SrgbClr != nil:
		return colors.Slot{Encoding: colors.SlotHex, Hex: clr.SrgbClr.ValAttr}
	case clr.SysClr != nil:
		slot := colors.Slot{Encoding: colors.SlotSystem, Name: clr.SysClr.ValAttr.String()}
		if clr.SysClr.LastClrAttr != nil {
			slot.Hex = *clr.SysClr.LastClrAttr
		}
		return slot
	case clr.ScrgbClr != nil:
		r, okR := percentValue(clr.ScrgbClr.RAttr)
		g, okG := percentValue(clr.ScrgbClr.GAttr)
		b, okB := percentValue(clr.ScrgbClr.BAttr)
		if okR && okG && okB {
			return colors.Slot{Encoding: colors.SlotPercentRGB, R: r, G: g, B: b}
		}
	case clr.HslClr != nil:
		s, okS := percentValue(clr.HslClr.SatAttr)
		l, okL := percentValue(clr.HslClr.LumAttr)
		if okS && okL {
			return colors.Slot{
				Encoding: colors.SlotHSL,
				H:        float64(clr.HslClr.HueAttr) / 60000, // 60000ths of a degree
				S:        s,
				L:        l,
			}
		}
	case clr.PrstClr != nil:
		return colors.Slot{Encoding: colors.SlotPreset, Name: clr.PrstClr.ValAttr.String()}
	}
	// Unresolvable encodings resolve to nothing and fall back downstream.
	return colors.Slot{Encoding: colors.SlotPreset, Name: ""}
}

// percentValue reads a drawing-ml percentage union: either a decimal in
// thousandths of a percent or a literal "NN%" string.
func percentValue(p dml.ST_Percentage) (float64, bool) {
	if p.ST_PercentageDecimal != nil {
		return float64(*p.ST_PercentageDecimal) / 100000, true
	}
	if p.ST_Percentage != nil {
		s := strings.TrimSuffix(strings.TrimSpace(*p.ST_Percentage), "%")
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v / 100, true
		}
	}
	return 0, false
}
