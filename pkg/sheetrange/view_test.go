package sheetrange

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

func row(r int, cells map[string]interface{}) models.CellRow {
	return models.CellRow{R: r, C: cells}
}

func testSheet() models.SheetData {
	return models.SheetData{
		Rows: []models.CellRow{
			row(1, map[string]interface{}{"1": "a1", "2": "b1", "4": "d1"}),
			row(2, map[string]interface{}{"2": "b2", "3": "c2"}),
			row(5, map[string]interface{}{"1": "a5"}),
			row(9, map[string]interface{}{"5": "e9"}),
		},
		TableCandidates: []string{"A1:C2", "E8:F10", "garbage"},
	}
}

func TestBuildPrintAreaView(t *testing.T) {
	area := models.PrintArea{Range: cellrange.MustParse("B1:C5")}
	got := BuildPrintAreaView("book.xlsx", "Sheet1", testSheet(), area)

	want := models.PrintAreaView{
		BookName:  "book.xlsx",
		SheetName: "Sheet1",
		Area:      area,
		Rows: []models.CellRow{
			row(1, map[string]interface{}{"2": "b1"}),
			row(2, map[string]interface{}{"2": "b2", "3": "c2"}),
		},
		TableCandidates: []string{"A1:C2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildPrintAreaView mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPrintAreaViewWholeColumn(t *testing.T) {
	area := models.PrintArea{Range: cellrange.MustParse("E:E")}
	got := BuildPrintAreaView("book.xlsx", "Sheet1", testSheet(), area)

	want := models.PrintAreaView{
		BookName:        "book.xlsx",
		SheetName:       "Sheet1",
		Area:            area,
		Rows:            []models.CellRow{row(9, map[string]interface{}{"5": "e9"})},
		TableCandidates: []string{"E8:F10"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildPrintAreaView mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintAreaViews(t *testing.T) {
	sheet := testSheet()
	sheet.PrintAreas = []models.PrintArea{
		{Range: cellrange.MustParse("A1:A1")},
		{Range: cellrange.MustParse("5:5")},
	}
	wb := &models.WorkbookData{
		BookName: "book.xlsx",
		Sheets: map[string]models.SheetData{
			"Zeta":  sheet,
			"Alpha": {PrintAreas: []models.PrintArea{{Range: cellrange.MustParse("A1")}}},
			"Empty": {},
		},
	}

	views := PrintAreaViews(wb)
	if len(views) != 3 {
		t.Fatalf("Expected 3 views, got %d", len(views))
	}

	names := []string{views[0].SheetName, views[1].SheetName, views[2].SheetName}
	if diff := cmp.Diff([]string{"Alpha", "Zeta", "Zeta"}, names); diff != "" {
		t.Errorf("view order mismatch (-want +got):\n%s", diff)
	}
	if views[0].Rows != nil {
		t.Errorf("Expected no rows for Alpha, got %v", views[0].Rows)
	}
	if diff := cmp.Diff([]models.CellRow{row(5, map[string]interface{}{"1": "a5"})}, views[2].Rows); diff != "" {
		t.Errorf("row 5 view mismatch (-want +got):\n%s", diff)
	}
}

func anchored(text string, ref string) models.Shape {
	r := cellrange.MustParse(ref)
	return models.Shape{Text: text, Anchor: &r}
}

func TestBuildPrintAreaViewShapes(t *testing.T) {
	sheet := testSheet()
	sheet.Shapes = []models.Shape{
		anchored("inside", "B2:C3"),
		anchored("overlapping", "C5:F8"),
		anchored("outside", "E1:F4"),
		{Text: "floating"},
	}

	area := models.PrintArea{Range: cellrange.MustParse("B1:C5")}
	got := BuildPrintAreaView("book.xlsx", "Sheet1", sheet, area)

	want := []models.Shape{
		anchored("inside", "B2:C3"),
		anchored("overlapping", "C5:F8"),
	}
	if diff := cmp.Diff(want, got.Shapes); diff != "" {
		t.Errorf("shape filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPrintAreaViewCharts(t *testing.T) {
	bar := cellrange.MustParse("D10:H20")
	sheet := testSheet()
	sheet.Charts = []models.Chart{
		{Name: "anchored", Anchor: &bar},
		{Name: "data here", Series: []models.ChartSeries{{YRange: "Sheet1!$B$2:$B$4"}}},
		{Name: "data elsewhere", Series: []models.ChartSeries{{YRange: "Other!$B$2:$B$4"}}},
		{Name: "unparseable", Series: []models.ChartSeries{{YRange: "=SERIES()"}}},
	}

	names := func(charts []models.Chart) []string {
		var out []string
		for _, c := range charts {
			out = append(out, c.Name)
		}
		return out
	}

	got := BuildPrintAreaView("book.xlsx", "Sheet1", sheet, models.PrintArea{Range: cellrange.MustParse("B1:C5")})
	if diff := cmp.Diff([]string{"data here"}, names(got.Charts)); diff != "" {
		t.Errorf("chart filter mismatch (-want +got):\n%s", diff)
	}

	got = BuildPrintAreaView("book.xlsx", "Sheet1", sheet, models.PrintArea{Range: cellrange.MustParse("H:H")})
	if diff := cmp.Diff([]string{"anchored"}, names(got.Charts)); diff != "" {
		t.Errorf("chart filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPrintAreaViewRowOutsideColumns(t *testing.T) {
	// Row 1 spans A:D but has no cell in C, so it must not produce an empty row.
	area := models.PrintArea{Range: cellrange.MustParse("C1:C2")}
	got := BuildPrintAreaView("book.xlsx", "Sheet1", testSheet(), area)

	want := []models.CellRow{row(2, map[string]interface{}{"3": "c2"})}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("row filter mismatch (-want +got):\n%s", diff)
	}

	// Row 9 only holds E9, so its bounds miss A:B entirely.
	got = BuildPrintAreaView("book.xlsx", "Sheet1", testSheet(), models.PrintArea{Range: cellrange.MustParse("A8:B9")})
	if got.Rows != nil {
		t.Errorf("Expected no rows, got %v", got.Rows)
	}
}
