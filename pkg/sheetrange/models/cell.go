// Package models defines the JSON data structures produced by extraction.
package models

import (
	"strconv"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

// CellRow represents a single row of cells with optional hyperlinks.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// Links maps column index to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}

// Bounds returns the range spanned by the row's non-empty cells.
// ok is false when the row has no parseable column keys.
func (r CellRow) Bounds() (bounds cellrange.Range, ok bool) {
	for key := range r.C {
		col, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if !ok {
			bounds = cellrange.Cell(r.R, col)
			ok = true
			continue
		}
		bounds.C1 = min(bounds.C1, col)
		bounds.C2 = max(bounds.C2, col)
	}
	return bounds, ok
}

// Clip returns a copy of the row holding only the cells inside area.
// The second result is false when no cell remains.
func (r CellRow) Clip(area cellrange.Range) (CellRow, bool) {
	out := CellRow{R: r.R, C: make(map[string]interface{})}
	for key, value := range r.C {
		col, err := strconv.Atoi(key)
		if err != nil || !area.ContainsCell(r.R, col) {
			continue
		}
		out.C[key] = value
		if link, ok := r.Links[key]; ok {
			if out.Links == nil {
				out.Links = make(map[string]string)
			}
			out.Links[key] = link
		}
	}
	return out, len(out.C) > 0
}
