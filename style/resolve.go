package style

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/aerissecure/xlsxhtml/colors"
	"github.com/aerissecure/xlsxhtml/sheet"
)

// Resolved is the fully resolved visual style of one cell. It is a value
// type: resolving the same cell twice yields identical values, and the HTML
// emitter uses it directly as a de-duplication key.
type Resolved struct {
	HasFill    bool
	Fill       colors.RGBA // background; ignored unless HasFill
	FontColor  colors.RGBA
	FontSizePx float64 // 0 means inherit
	FontFamily string
	Bold       bool
	Italic     bool
	Strike     bool
	Underline  string // "", "single", "double"

	Left, Right, Top, Bottom Edge

	HAlign      string // left|center|right|justify
	VAlign      string // top|middle|bottom
	Wrap        bool
	RotationDeg int
	IndentPx    float64
}

// CellInfo carries the per-cell inputs of a style resolution.
type CellInfo struct {
	Row, Col int // 1-based address
	Value    string
	Numeric  bool
	Style    *int // the cell's own style index
	RowStyle *int // the owning row's style index
}

// RangeRule is a conditional rule scoped to one pre-parsed rectangle
// (1-based, inclusive).
type RangeRule struct {
	FromRow, FromCol, ToRow, ToCol int
	Rule                           sheet.Rule
}

func (r RangeRule) contains(row, col int) bool {
	return row >= r.FromRow && row <= r.ToRow && col >= r.FromCol && col <= r.ToCol
}

// Defaults are the per-facet fallback colors substituted when a color fails
// to resolve.
type Defaults struct {
	Font   colors.RGBA
	Fill   colors.RGBA
	Border colors.RGBA
}

// StandardDefaults is black text, white fill fallback, light-gray borders.
func StandardDefaults() Defaults {
	return Defaults{
		Font:   colors.RGB(0, 0, 0),
		Fill:   colors.RGB(255, 255, 255),
		Border: colors.RGB(211, 211, 211),
	}
}

// Resolver resolves cell styles against one stylesheet and theme.
type Resolver struct {
	Styles   *sheet.Stylesheet
	Colors   *colors.Resolver
	Defaults Defaults
	Log      *log.Logger // nil disables diagnostics
}

// Default is the style of a cell with no format index: transparent fill,
// default font color, light-gray thin borders, bottom-aligned.
func (r *Resolver) Default(numeric bool) Resolved {
	halign := "left"
	if numeric {
		halign = "right"
	}
	edge := DefaultEdge(r.Defaults.Border)
	return Resolved{
		FontColor: r.Defaults.Font,
		Left:      edge, Right: edge, Top: edge, Bottom: edge,
		HAlign: halign,
		VAlign: "bottom",
	}
}

// Resolve computes the cascaded style of one cell and overlays the winning
// conditional rule, if any. Every facet is resolved independently: a failure
// in one leaves the others intact, and nothing here ever fails the cell.
func (r *Resolver) Resolve(cell CellInfo, rules []RangeRule) Resolved {
	out := r.Default(cell.Numeric)

	if cf := r.cellFormat(cell); cf != nil {
		r.applyFormat(&out, cf, cell.Numeric)
	}
	if rule := r.winningRule(cell, rules); rule != nil {
		r.applyDiff(&out, rule, cell.Numeric)
	}
	return out
}

// cellFormat picks the effective format: the cell's own index, else the
// row's, else none. An index outside the stylesheet is treated as no style.
func (r *Resolver) cellFormat(cell CellInfo) *sheet.CellFormat {
	idx := cell.Style
	if idx == nil {
		idx = cell.RowStyle
	}
	if idx == nil || r.Styles == nil {
		return nil
	}
	if *idx < 0 || *idx >= len(r.Styles.CellFormats) {
		r.debug("cell format index out of range", "index", *idx)
		return nil
	}
	return &r.Styles.CellFormats[*idx]
}

// The lookup helpers tolerate nil ids and out-of-range indexes: both resolve
// as "no contribution" to the facet.

func (r *Resolver) lookupFill(id *int) *sheet.Fill {
	if id == nil || *id < 0 || *id >= len(r.Styles.Fills) {
		return nil
	}
	return &r.Styles.Fills[*id]
}

func (r *Resolver) lookupFont(id *int) *sheet.Font {
	if id == nil || *id < 0 || *id >= len(r.Styles.Fonts) {
		return nil
	}
	return &r.Styles.Fonts[*id]
}

func (r *Resolver) lookupBorder(id *int) *sheet.Border {
	if id == nil || *id < 0 || *id >= len(r.Styles.Borders) {
		return nil
	}
	return &r.Styles.Borders[*id]
}

func (r *Resolver) applyFormat(out *Resolved, cf *sheet.CellFormat, numeric bool) {
	if fill := r.lookupFill(cf.FillID); fill != nil {
		r.applyFill(out, fill)
	}
	if font := r.lookupFont(cf.FontID); font != nil {
		out.FontFamily = font.Name
		if font.SizePt > 0 {
			out.FontSizePx = font.SizePt * 96 / 72
		}
		out.FontColor = r.Colors.Resolve(font.Color, r.Defaults.Font, nil)
		out.Bold = font.Bold
		out.Italic = font.Italic
		out.Strike = font.Strike
		out.Underline = font.Underline
	}
	if border := r.lookupBorder(cf.BorderID); border != nil {
		r.applyBorder(out, border)
	}
	if cf.Alignment != nil {
		r.applyAlignment(out, cf.Alignment, numeric)
	}
}

func (r *Resolver) applyFill(out *Resolved, fill *sheet.Fill) {
	if fill.Pattern == "none" {
		return
	}
	if fill.Fg.Kind == colors.KindNone && fill.Bg.Kind == colors.KindNone {
		return
	}
	bg := fill.Bg
	out.Fill = r.Colors.Resolve(fill.Fg, r.Defaults.Fill, &bg)
	out.HasFill = true
}

func (r *Resolver) applyBorder(out *Resolved, b *sheet.Border) {
	def := r.Defaults.Border
	if b.Left != nil {
		out.Left = MapEdge(b.Left, r.Colors, def)
	}
	if b.Right != nil {
		out.Right = MapEdge(b.Right, r.Colors, def)
	}
	if b.Top != nil {
		out.Top = MapEdge(b.Top, r.Colors, def)
	}
	if b.Bottom != nil {
		out.Bottom = MapEdge(b.Bottom, r.Colors, def)
	}
}

func (r *Resolver) applyAlignment(out *Resolved, a *sheet.Alignment, numeric bool) {
	switch a.Horizontal {
	case "", "general":
		if numeric {
			out.HAlign = "right"
		} else {
			out.HAlign = "left"
		}
	case "center", "centerContinuous", "distributed":
		out.HAlign = "center"
	case "right":
		out.HAlign = "right"
	case "justify":
		out.HAlign = "justify"
	default:
		out.HAlign = "left"
	}
	switch a.Vertical {
	case "top":
		out.VAlign = "top"
	case "center":
		out.VAlign = "middle"
	default:
		out.VAlign = "bottom"
	}
	out.Wrap = a.Wrap
	if a.RotationDeg != 0 {
		out.RotationDeg = a.RotationDeg
	}
	if a.Indent > 0 {
		out.IndentPx = float64(a.Indent) * 8
	}
}

// winningRule scans the rules whose range contains the cell, evaluates each
// predicate against the cell's rendered text, and keeps the lowest priority
// number. The source order of rules is not priority-sorted.
func (r *Resolver) winningRule(cell CellInfo, rules []RangeRule) *sheet.Rule {
	var best *sheet.Rule
	for i := range rules {
		rr := &rules[i]
		if !rr.contains(cell.Row, cell.Col) {
			continue
		}
		if !matches(rr.Rule.Pred, cell.Value, rr.Rule.Text) {
			continue
		}
		if best == nil || rr.Rule.Priority < best.Priority {
			best = &rr.Rule
		}
	}
	return best
}

// matches evaluates a predicate case-sensitively against the cell's rendered
// text.
func matches(p sheet.Predicate, value, operand string) bool {
	switch p {
	case sheet.PredEquals:
		return value == operand
	case sheet.PredBeginsWith:
		return strings.HasPrefix(value, operand)
	case sheet.PredEndsWith:
		return strings.HasSuffix(value, operand)
	case sheet.PredContains:
		return strings.Contains(value, operand)
	}
	return false
}

// applyDiff overlays the rule's differential style field-by-field: facets the
// differential declares win, everything else keeps the base cascade.
func (r *Resolver) applyDiff(out *Resolved, rule *sheet.Rule, numeric bool) {
	if rule.DiffIndex == nil || r.Styles == nil {
		return
	}
	idx := *rule.DiffIndex
	if idx < 0 || idx >= len(r.Styles.Diffs) {
		r.debug("differential format index out of range", "index", idx)
		return
	}
	diff := &r.Styles.Diffs[idx]

	if diff.Fill != nil {
		r.applyFill(out, diff.Fill)
	}
	if f := diff.Font; f != nil {
		if f.Name != nil {
			out.FontFamily = *f.Name
		}
		if f.SizePt != nil && *f.SizePt > 0 {
			out.FontSizePx = *f.SizePt * 96 / 72
		}
		if f.Color != nil {
			out.FontColor = r.Colors.Resolve(*f.Color, r.Defaults.Font, nil)
		}
		if f.Bold != nil {
			out.Bold = *f.Bold
		}
		if f.Italic != nil {
			out.Italic = *f.Italic
		}
		if f.Strike != nil {
			out.Strike = *f.Strike
		}
		if f.Underline != nil {
			out.Underline = *f.Underline
		}
	}
	if diff.Border != nil {
		r.applyBorder(out, diff.Border)
	}
	if diff.Alignment != nil {
		r.applyAlignment(out, diff.Alignment, numeric)
	}
}

func (r *Resolver) debug(msg string, kv ...any) {
	if r.Log != nil {
		r.Log.Debug(msg, kv...)
	}
}
