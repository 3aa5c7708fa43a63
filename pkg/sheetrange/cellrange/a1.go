package cellrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// Parse parses an A1-style reference such as "B1", "A1:C2", "$A$1:$C$2",
// "B:B" or "2:5". A sheet prefix ("Sheet1!A1:B2") is accepted and ignored.
// Inverted references like "C2:A1" are normalized, and a range ending on the
// last row or column of the sheet ("A1:XFD1", "A:XFD") gets an Unbounded end.
func Parse(ref string) (Range, error) {
	_, r, err := ParseSheetRef(ref)
	return r, err
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(ref string) Range {
	r, err := Parse(ref)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseSheetRef parses a reference of the form 'Sheet Name'!A1:C2 and
// returns the sheet name (empty when absent) and the range.
func ParseSheetRef(ref string) (string, Range, error) {
	ref = strings.TrimSpace(ref)
	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = unquoteSheet(ref[:idx])
		ref = ref[idx+1:]
	}

	ref = strings.ToUpper(strings.ReplaceAll(ref, "$", ""))
	if ref == "" {
		return "", Range{}, errors.Wrap(ErrInvalidReference, "empty reference")
	}

	parts := strings.Split(ref, ":")
	switch len(parts) {
	case 1:
		col, row, err := excelize.CellNameToCoordinates(parts[0])
		if err != nil {
			return "", Range{}, errors.Wrapf(ErrInvalidReference, "%q: %v", ref, err)
		}
		return sheet, Cell(row, col), nil
	case 2:
		r, err := parsePair(parts[0], parts[1])
		if err != nil {
			return "", Range{}, errors.Wrapf(err, "%q", ref)
		}
		return sheet, toSheetEdge(r), nil
	default:
		return "", Range{}, errors.Wrapf(ErrInvalidReference, "%q: too many ':'", ref)
	}
}

type partKind int

const (
	kindInvalid partKind = iota
	kindCell
	kindColumn
	kindRow
)

func classify(s string) partKind {
	if s == "" {
		return kindInvalid
	}
	letters, digits := 0, 0
	for _, ch := range s {
		switch {
		case ch >= 'A' && ch <= 'Z':
			if digits > 0 {
				return kindInvalid
			}
			letters++
		case ch >= '0' && ch <= '9':
			digits++
		default:
			return kindInvalid
		}
	}
	switch {
	case letters > 0 && digits > 0:
		return kindCell
	case letters > 0:
		return kindColumn
	default:
		return kindRow
	}
}

func parsePair(start, end string) (Range, error) {
	kind := classify(start)
	if kind == kindInvalid || kind != classify(end) {
		return Range{}, errors.Wrapf(ErrInvalidReference, "mismatched bounds %q and %q", start, end)
	}

	switch kind {
	case kindCell:
		c1, r1, err := excelize.CellNameToCoordinates(start)
		if err != nil {
			return Range{}, errors.Wrapf(ErrInvalidReference, "%v", err)
		}
		c2, r2, err := excelize.CellNameToCoordinates(end)
		if err != nil {
			return Range{}, errors.Wrapf(ErrInvalidReference, "%v", err)
		}
		return Range{R1: r1, C1: c1, R2: r2, C2: c2}.Normalize(), nil
	case kindColumn:
		c1, err := excelize.ColumnNameToNumber(start)
		if err != nil {
			return Range{}, errors.Wrapf(ErrInvalidReference, "%v", err)
		}
		c2, err := excelize.ColumnNameToNumber(end)
		if err != nil {
			return Range{}, errors.Wrapf(ErrInvalidReference, "%v", err)
		}
		return WholeColumns(c1, c2), nil
	default:
		r1, err := parseRow(start)
		if err != nil {
			return Range{}, err
		}
		r2, err := parseRow(end)
		if err != nil {
			return Range{}, err
		}
		return WholeRows(r1, r2), nil
	}
}

func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxRows {
		return 0, errors.Wrapf(ErrInvalidReference, "row %q out of range", s)
	}
	return n, nil
}

func unquoteSheet(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

// String renders r in A1 notation. Whole-column and whole-row ranges use
// the "B:B" and "2:2" forms; other Unbounded ends are clamped to the sheet
// limits. A range unbounded on both axes renders as "A:XFD". Parse reads all
// of these back to the same Range.
func (r Range) String() string {
	r = r.Normalize()
	if r.R1 < 1 || r.C1 < 1 {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
	}

	switch {
	case r.IsWholeColumn():
		c := r.Clamp(MaxRows, MaxCols)
		first, err1 := excelize.ColumnNumberToName(c.C1)
		last, err2 := excelize.ColumnNumberToName(c.C2)
		if err1 == nil && err2 == nil {
			return first + ":" + last
		}
	case r.IsWholeRow():
		c := r.Clamp(MaxRows, MaxCols)
		return fmt.Sprintf("%d:%d", c.R1, c.R2)
	}

	c := r.Clamp(MaxRows, MaxCols)
	start, err := excelize.CoordinatesToCellName(c.C1, c.R1)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
	}
	if c.R1 == c.R2 && c.C1 == c.C2 {
		return start
	}
	end, err := excelize.CoordinatesToCellName(c.C2, c.R2)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
	}
	return start + ":" + end
}
