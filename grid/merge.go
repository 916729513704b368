package grid

// Span is a normalized merge range: from ≤ to on both axes.
type Span struct {
	FromRow, FromCol, ToRow, ToCol int
}

// RowSpan is the number of rows the span covers.
func (s Span) RowSpan() int { return s.ToRow - s.FromRow + 1 }

// ColSpan is the number of columns the span covers.
func (s Span) ColSpan() int { return s.ToCol - s.FromCol + 1 }

// Contains reports whether the address lies inside the span.
func (s Span) Contains(a Address) bool {
	return a.Row >= s.FromRow && a.Row <= s.ToRow && a.Col >= s.FromCol && a.Col <= s.ToCol
}

// ParseSpans parses merge declarations into normalized spans. Declarations
// that fail to parse are skipped.
func ParseSpans(refs []string) []Span {
	var spans []Span
	for _, ref := range refs {
		from, to, err := ParseRange(ref)
		if err != nil {
			continue
		}
		spans = append(spans, Span{
			FromRow: minInt(from.Row, to.Row),
			FromCol: minInt(from.Col, to.Col),
			ToRow:   maxInt(from.Row, to.Row),
			ToCol:   maxInt(from.Col, to.Col),
		})
	}
	return spans
}

// CellRole classifies a grid cell with respect to a sheet's merge spans.
type CellRole int

const (
	// RoleOrdinary cells are outside every span and render normally.
	RoleOrdinary CellRole = iota
	// RoleAnchor cells are a span's top-left member and render with
	// colspan/rowspan.
	RoleAnchor
	// RoleSuppressed cells are covered by a span without anchoring it and do
	// not render.
	RoleSuppressed
)

// Classify determines the role of an address. For anchors the owning span is
// returned as well.
func Classify(a Address, spans []Span) (CellRole, Span) {
	for _, s := range spans {
		if a.Row == s.FromRow && a.Col == s.FromCol {
			return RoleAnchor, s
		}
		if s.Contains(a) {
			return RoleSuppressed, Span{}
		}
	}
	return RoleOrdinary, Span{}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
