// Package cellrange implements rectangular cell ranges and the overlap test
// between them.
package cellrange

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// Unbounded marks an end bound that runs to the end of its axis, as used by
// whole-column (B:B) and whole-row (2:2) selectors.
const Unbounded = math.MaxInt

// Sheet limits of the xlsx format.
const (
	MaxRows = excelize.TotalRows
	MaxCols = excelize.MaxColumns
)

// Range is a rectangle of cells with inclusive, 1-based bounds.
type Range struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row (inclusive, may be Unbounded).
	R2 int `json:"r2"`
	// C2 is the end column (inclusive, may be Unbounded).
	C2 int `json:"c2"`
}

// New returns a Range after checking that its bounds are well formed.
func New(r1, c1, r2, c2 int) (Range, error) {
	r := Range{R1: r1, C1: c1, R2: r2, C2: c2}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Cell returns the single-cell range at row, col.
func Cell(row, col int) Range {
	return Range{R1: row, C1: col, R2: row, C2: col}
}

// WholeColumns returns the range covering every row of columns c1..c2.
func WholeColumns(c1, c2 int) Range {
	return Range{R1: 1, C1: c1, R2: Unbounded, C2: c2}.Normalize()
}

// WholeRows returns the range covering every column of rows r1..r2.
func WholeRows(r1, r2 int) Range {
	return Range{R1: r1, C1: 1, R2: r2, C2: Unbounded}.Normalize()
}

// Validate reports ErrInvalidRange when a start bound exceeds its end bound
// or a bound is below 1.
func (r Range) Validate() error {
	if r.R1 < 1 || r.C1 < 1 {
		return errors.Wrapf(ErrInvalidRange, "bounds must be >= 1: rows [%d,%d] cols [%d,%d]",
			r.R1, r.R2, r.C1, r.C2)
	}
	if r.R1 > r.R2 {
		return errors.Wrapf(ErrInvalidRange, "row start %d > row end %d", r.R1, r.R2)
	}
	if r.C1 > r.C2 {
		return errors.Wrapf(ErrInvalidRange, "column start %d > column end %d", r.C1, r.C2)
	}
	return nil
}

// Normalize swaps inverted bounds on either axis.
func (r Range) Normalize() Range {
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r
}

// Intersects reports whether a and b share at least one cell. Ranges that
// only touch at an edge intersect. Inverted bounds are normalized first, so
// the result is defined for any input.
func Intersects(a, b Range) bool {
	a, b = a.Normalize(), b.Normalize()
	return overlaps(a.R1, a.R2, b.R1, b.R2) && overlaps(a.C1, a.C2, b.C1, b.C2)
}

// overlaps reports whether the closed intervals [s1,e1] and [s2,e2] overlap.
// Both clauses are needed: the first catches b starting inside a, the second
// a starting inside b.
func overlaps(s1, e1, s2, e2 int) bool {
	return (s1 <= s2 && s2 <= e1) || (s2 <= s1 && s1 <= e2)
}

// Intersects reports whether r and o share at least one cell.
func (r Range) Intersects(o Range) bool {
	return Intersects(r, o)
}

// Intersection returns the cells common to r and o.
func (r Range) Intersection(o Range) (Range, bool) {
	if !Intersects(r, o) {
		return Range{}, false
	}
	r, o = r.Normalize(), o.Normalize()
	return Range{
		R1: max(r.R1, o.R1),
		C1: max(r.C1, o.C1),
		R2: min(r.R2, o.R2),
		C2: min(r.C2, o.C2),
	}, true
}

// Contains reports whether every cell of o lies inside r.
func (r Range) Contains(o Range) bool {
	r, o = r.Normalize(), o.Normalize()
	return r.R1 <= o.R1 && o.R2 <= r.R2 && r.C1 <= o.C1 && o.C2 <= r.C2
}

// ContainsCell reports whether the cell at row, col lies inside r.
func (r Range) ContainsCell(row, col int) bool {
	return r.Contains(Cell(row, col))
}

// IsWholeColumn reports whether r spans every row.
func (r Range) IsWholeColumn() bool {
	return r.R1 <= 1 && r.R2 == Unbounded
}

// IsWholeRow reports whether r spans every column.
func (r Range) IsWholeRow() bool {
	return r.C1 <= 1 && r.C2 == Unbounded
}

// Clamp bounds r to a sheet of maxRows by maxCols, replacing Unbounded ends.
func (r Range) Clamp(maxRows, maxCols int) Range {
	r = r.Normalize()
	r.R2 = min(r.R2, maxRows)
	r.C2 = min(r.C2, maxCols)
	r.R1 = min(r.R1, r.R2)
	r.C1 = min(r.C1, r.C2)
	return r
}

// Rows returns the number of rows covered by r, or Unbounded.
func (r Range) Rows() int {
	return span(r.R1, r.R2)
}

// Cols returns the number of columns covered by r, or Unbounded.
func (r Range) Cols() int {
	return span(r.C1, r.C2)
}

func span(start, end int) int {
	if start > end {
		start, end = end, start
	}
	if end == Unbounded {
		return Unbounded
	}
	return end - start + 1
}
