package sheet

// AnchorKind is the closed set of floating-object placement modes.
type AnchorKind int

const (
	AnchorAbsolute AnchorKind = iota
	AnchorOneCell
	AnchorTwoCell
)

// Marker pins a drawing edge to a cell corner: 0-based column/row plus an
// intra-cell offset in EMU.
type Marker struct {
	Col    int
	ColOff int64 // EMU
	Row    int
	RowOff int64 // EMU
}

// Point is an absolute position in EMU.
type Point struct {
	X, Y int64
}

// Extent is a declared size in EMU.
type Extent struct {
	CX, CY int64
}

// Anchor is a floating-object placement. Exactly the fields for its Kind are
// set: Pos+Ext for absolute, From(+Ext) for one-cell, From+To for two-cell.
// A nil Ext on a one-cell anchor means the size is unresolved and the
// renderer falls back to intrinsic sizing.
type Anchor struct {
	Kind AnchorKind
	Pos  *Point
	From *Marker
	To   *Marker
	Ext  *Extent
}

// Drawing is a floating image anchored to a sheet.
type Drawing struct {
	Anchor      Anchor
	Image       []byte
	ContentType string
}
