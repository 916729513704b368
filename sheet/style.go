package sheet

import "github.com/aerissecure/xlsxhtml/colors"

// Stylesheet exposes the indexed style collections a cell format points into.
// Lookups beyond a collection's bounds are an upstream contract violation and
// resolve as "no contribution".
type Stylesheet struct {
	Fills       []Fill
	Fonts       []Font
	Borders     []Border
	CellFormats []CellFormat
	Diffs       []DiffFormat
}

// Fill is a pattern fill. Pattern "none" (or empty) contributes no
// background.
type Fill struct {
	Pattern string
	Fg, Bg  colors.Ref
}

// Font is a fully-populated font definition.
type Font struct {
	Name      string
	SizePt    float64
	Color     colors.Ref
	Bold      bool
	Italic    bool
	Strike    bool
	Underline string // "", "single", "double"
}

// BorderKind is the closed set of border side styles.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderThin
	BorderMedium
	BorderThick
	BorderDashed
	BorderDotted
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

// borderKindNames maps the spreadsheet style attribute values onto kinds.
var borderKindNames = map[string]BorderKind{
	"none":             BorderNone,
	"thin":             BorderThin,
	"medium":           BorderMedium,
	"thick":            BorderThick,
	"dashed":           BorderDashed,
	"dotted":           BorderDotted,
	"double":           BorderDouble,
	"hair":             BorderHair,
	"mediumDashed":     BorderMediumDashed,
	"dashDot":          BorderDashDot,
	"mediumDashDot":    BorderMediumDashDot,
	"dashDotDot":       BorderDashDotDot,
	"mediumDashDotDot": BorderMediumDashDotDot,
	"slantDashDot":     BorderSlantDashDot,
}

// BorderKindNamed maps a style attribute value to its kind; unknown values
// report false.
func BorderKindNamed(s string) (BorderKind, bool) {
	k, ok := borderKindNames[s]
	return k, ok
}

// BorderEdge is one declared border side.
type BorderEdge struct {
	Style BorderKind
	Color colors.Ref
}

// Border declares up to four sides; nil sides were not declared.
type Border struct {
	Left, Right, Top, Bottom *BorderEdge
}

// Alignment is a cell alignment block. Horizontal "" means "general".
type Alignment struct {
	Horizontal  string
	Vertical    string
	Wrap        bool
	RotationDeg int
	Indent      int
}

// CellFormat is one cellXfs entry; nil ids mean the facet is not referenced.
type CellFormat struct {
	FontID    *int
	FillID    *int
	BorderID  *int
	Alignment *Alignment
}

// FontPatch is a sparse font override carried by a differential format. Only
// non-nil fields participate in the overlay.
type FontPatch struct {
	Name      *string
	SizePt    *float64
	Color     *colors.Ref
	Bold      *bool
	Italic    *bool
	Strike    *bool
	Underline *string
}

// DiffFormat is a differential style: each present facet overrides the base
// cascade, absent facets leave it untouched.
type DiffFormat struct {
	Font      *FontPatch
	Fill      *Fill
	Border    *Border
	Alignment *Alignment
}

// Predicate is the closed set of conditional rule predicates, evaluated
// case-sensitively against a cell's rendered text.
type Predicate int

const (
	PredEquals Predicate = iota
	PredBeginsWith
	PredEndsWith
	PredContains
)

// Rule is one conditional formatting rule. Lower Priority wins among matching
// rules. DiffIndex points into Stylesheet.Diffs; nil means the rule carries
// no differential style.
type Rule struct {
	Priority  int
	Pred      Predicate
	Text      string
	DiffIndex *int
}

// RuleGroup scopes rules to the declared cell ranges.
type RuleGroup struct {
	Ranges []string // raw range refs like "B2:B10"
	Rules  []Rule
}
