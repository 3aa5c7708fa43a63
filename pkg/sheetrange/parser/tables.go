package parser

import (
	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells inside a block.
	DensityMin float64
	// CoverageMin is the minimum share of a block's columns holding data.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells in a block.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet.
// Blocks of consecutive non-empty rows are tested separately; each block
// that passes the thresholds is reported as an A1 range such as "A1:D10".
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "read rows of %q", sheetName)
	}
	return detectTables(rows, params), nil
}

func detectTables(rows [][]string, params TableDetectionParams) []string {
	var tables []string
	for _, block := range rowBlocks(rows) {
		// Shrink the block to its occupied columns
		bounds, ok := findDataBounds(rows, block)
		if !ok {
			continue
		}
		if isTable(rows, bounds, params) {
			tables = append(tables, bounds.String())
		}
	}
	return tables
}

// rowBlocks splits rows into runs of consecutive non-empty rows, returned as
// whole-row ranges (1-based).
func rowBlocks(rows [][]string) []cellrange.Range {
	var blocks []cellrange.Range
	start := 0
	for i := 0; i <= len(rows); i++ {
		if i < len(rows) && !isEmptyRow(rows[i]) {
			if start == 0 {
				start = i + 1
			}
			continue
		}
		// An empty row (or the end) closes the open block
		if start > 0 {
			blocks = append(blocks, cellrange.WholeRows(start, i))
			start = 0
		}
	}
	return blocks
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// findDataBounds finds the bounding box of non-empty cells inside block.
func findDataBounds(rows [][]string, block cellrange.Range) (bounds cellrange.Range, ok bool) {
	for rowNum := block.R1; rowNum <= block.R2 && rowNum <= len(rows); rowNum++ {
		for colIdx, cell := range rows[rowNum-1] {
			if cell == "" {
				continue
			}
			cellRange := cellrange.Cell(rowNum, colIdx+1)
			if !ok {
				bounds, ok = cellRange, true
				continue
			}
			bounds.R1 = min(bounds.R1, cellRange.R1)
			bounds.R2 = max(bounds.R2, cellRange.R2)
			bounds.C1 = min(bounds.C1, cellRange.C1)
			bounds.C2 = max(bounds.C2, cellRange.C2)
		}
	}
	return bounds, ok
}

func isTable(rows [][]string, bounds cellrange.Range, params TableDetectionParams) bool {
	// Count filled cells and the columns they use
	nonEmpty := 0
	usedCols := make(map[int]bool)
	for rowNum := bounds.R1; rowNum <= bounds.R2 && rowNum <= len(rows); rowNum++ {
		row := rows[rowNum-1]
		for col := bounds.C1; col <= bounds.C2 && col <= len(row); col++ {
			if row[col-1] != "" {
				nonEmpty++
				usedCols[col] = true
			}
		}
	}

	// Check thresholds
	if nonEmpty < params.MinNonemptyCells {
		return false
	}
	density := float64(nonEmpty) / float64(bounds.Rows()*bounds.Cols())
	if density < params.DensityMin {
		return false
	}
	coverage := float64(len(usedCols)) / float64(bounds.Cols())
	return coverage >= params.CoverageMin
}
