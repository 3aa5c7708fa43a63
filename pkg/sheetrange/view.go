package sheetrange

import (
	"sort"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

// BuildPrintAreaView restricts a sheet to one print area. Rows outside the
// area are dropped and the remaining rows are trimmed to the area's columns.
// Shapes and charts are kept when their cell anchor intersects the area; a
// chart without an anchor is kept when one of its series ranges on this sheet
// does. Shapes without an anchor are dropped. Table candidates are kept when
// their range intersects the area.
func BuildPrintAreaView(bookName, sheetName string, sheet models.SheetData, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		// Filter rows within area; Bounds skips rows before their cells are copied
		bounds, ok := row.Bounds()
		if !ok || !cellrange.Intersects(bounds, area.Range) {
			continue
		}
		if clipped, ok := row.Clip(area.Range); ok {
			view.Rows = append(view.Rows, clipped)
		}
	}

	// Filter shapes overlapping area
	for _, shape := range sheet.Shapes {
		if shape.Anchor != nil && cellrange.Intersects(*shape.Anchor, area.Range) {
			view.Shapes = append(view.Shapes, shape)
		}
	}

	// Filter charts overlapping area
	for _, chart := range sheet.Charts {
		if chartIntersects(chart, sheetName, area.Range) {
			view.Charts = append(view.Charts, chart)
		}
	}

	// Filter table candidates intersecting area
	for _, candidate := range sheet.TableCandidates {
		if tableIntersects(candidate, area.Range) {
			view.TableCandidates = append(view.TableCandidates, candidate)
		}
	}

	return view
}

func chartIntersects(chart models.Chart, sheetName string, area cellrange.Range) bool {
	if chart.Anchor != nil {
		return cellrange.Intersects(*chart.Anchor, area)
	}
	for _, r := range chart.DataRanges(sheetName) {
		if cellrange.Intersects(r, area) {
			return true
		}
	}
	return false
}

func tableIntersects(ref string, area cellrange.Range) bool {
	r, err := cellrange.Parse(ref)
	if err != nil {
		return false
	}
	return cellrange.Intersects(r, area)
}

// PrintAreaViews builds a view for every print area in the workbook, ordered
// by sheet name and then by position within the sheet.
func PrintAreaViews(wb *models.WorkbookData) []models.PrintAreaView {
	names := make([]string, 0, len(wb.Sheets))
	for name := range wb.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	var views []models.PrintAreaView
	for _, name := range names {
		sheet := wb.Sheets[name]
		for _, area := range sheet.PrintAreas {
			views = append(views, BuildPrintAreaView(wb.BookName, name, sheet, area))
		}
	}
	return views
}
