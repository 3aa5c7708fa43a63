package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for sheetName, areas := range parsePrintAreaReference(dn.RefersTo, dn.Scope) {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string such as
// 'Sheet Name'!$A$1:$D$10,'Sheet Name'!$F:$F. Parts without a sheet prefix
// are attributed to scope. Unparseable parts are skipped.
func parsePrintAreaReference(ref, scope string) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, part := range splitReferences(ref) {
		part = strings.TrimPrefix(strings.TrimSpace(part), "=")
		if part == "" {
			continue
		}
		sheetName, r, err := cellrange.ParseSheetRef(part)
		if err != nil {
			continue
		}
		if sheetName == "" {
			sheetName = scope
		}
		if sheetName == "" {
			continue
		}
		result[sheetName] = append(result[sheetName], models.PrintArea{Range: r})
	}

	return result
}

// splitReferences splits a comma-separated reference list, ignoring commas
// inside quoted sheet names.
func splitReferences(ref string) []string {
	var parts []string
	inQuote := false
	start := 0
	for i, ch := range ref {
		switch ch {
		case '\'':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				parts = append(parts, ref[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, ref[start:])
}
