// Package parser reads cells, table candidates, print areas, shapes and
// charts out of xlsx workbooks.
package parser

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string, includeLinks bool) ([]models.CellRow, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "open rows of %q", sheetName)
	}
	defer rows.Close()

	var result []models.CellRow
	rowNum := 0
	for rows.Next() {
		rowNum++
		columns, err := rows.Columns()
		if err != nil {
			return result, errors.Wrapf(err, "read row %d of %q", rowNum, sheetName)
		}

		// Collect non-empty cells keyed by 1-based column
		cellMap := make(map[string]interface{})
		linkMap := make(map[string]string)
		for colIdx, cellValue := range columns {
			if cellValue == "" {
				continue
			}
			col := colIdx + 1
			colStr := strconv.Itoa(col)
			cellMap[colStr] = parseValue(cellValue)

			if includeLinks {
				if target := cellLink(f, sheetName, col, rowNum); target != "" {
					linkMap[colStr] = target
				}
			}
		}

		// Skip empty rows
		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{R: rowNum, C: cellMap}
		if len(linkMap) > 0 {
			cellRow.Links = linkMap
		}
		result = append(result, cellRow)
	}

	return result, rows.Error()
}

func cellLink(f *excelize.File, sheetName string, col, row int) string {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
	if err != nil || !hasLink {
		return ""
	}
	return target
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
