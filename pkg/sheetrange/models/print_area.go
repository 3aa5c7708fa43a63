package models

import "github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"

// PrintArea represents cell coordinate bounds for a print area.
// The embedded range serializes as r1, c1, r2, c2.
type PrintArea struct {
	cellrange.Range
}

// PrintAreaView represents a slice of a sheet restricted to a print area.
type PrintAreaView struct {
	// BookName is the workbook name owning the area.
	BookName string `json:"book_name"`
	// SheetName is the sheet name owning the area.
	SheetName string `json:"sheet_name"`
	// Area is the print area bounds.
	Area PrintArea `json:"area"`
	// Rows contains rows within the area bounds, trimmed to its columns.
	Rows []CellRow `json:"rows,omitempty"`
	// Shapes contains shapes whose anchor overlaps the area.
	Shapes []Shape `json:"shapes,omitempty"`
	// Charts contains charts whose anchor (or, lacking one, data) overlaps the area.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates contains table candidates intersecting the area.
	TableCandidates []string `json:"table_candidates,omitempty"`
}
