// Package grid computes sheet extent, pixel column/row tables, merge span
// geometry, and floating-drawing bounding boxes.
package grid

import (
	"fmt"
	"strings"
)

// Address is a 1-based cell coordinate.
type Address struct {
	Col, Row int
}

// String formats the address as "A1".
func (a Address) String() string {
	return ColumnName(a.Col) + fmt.Sprintf("%d", a.Row)
}

// ColumnName converts a 1-based column index to its letters.
// 1→"A", 26→"Z", 27→"AA"
func ColumnName(col int) string {
	name := ""
	for col > 0 {
		col-- // shift to 0-indexed letter
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// ColumnIndex converts column letters to a 1-based index, case-insensitively.
// "A"→1, "Z"→26, "aa"→27
func ColumnIndex(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col, nil
}

// ParseAddress parses a cell reference like "B3" or "$B$3". Sheet prefixes
// ("Sheet1!B3") are tolerated and stripped.
func ParseAddress(ref string) (Address, error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return Address{}, fmt.Errorf("empty cell reference")
	}

	i := 0
	for i < len(ref) && isAlpha(ref[i]) {
		i++
	}
	if i == 0 || i == len(ref) {
		return Address{}, fmt.Errorf("invalid cell reference: %q", ref)
	}

	col, err := ColumnIndex(ref[:i])
	if err != nil {
		return Address{}, fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}
	row := 0
	for _, ch := range ref[i:] {
		if ch < '0' || ch > '9' {
			return Address{}, fmt.Errorf("invalid row in cell reference: %q", ref)
		}
		row = row*10 + int(ch-'0')
	}
	if row < 1 {
		return Address{}, fmt.Errorf("invalid row number in cell reference: %q", ref)
	}
	return Address{Col: col, Row: row}, nil
}

// ParseRange parses "A1:C5" into its two corner addresses. A bare "A1" yields
// the same address twice.
func ParseRange(ref string) (from, to Address, err error) {
	parts := strings.SplitN(strings.TrimSpace(ref), ":", 2)
	from, err = ParseAddress(parts[0])
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if len(parts) == 1 {
		return from, from, nil
	}
	to, err = ParseAddress(parts[1])
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	return from, to, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
