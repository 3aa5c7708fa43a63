package sheetrange

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/parser"
)

// Extract extracts structured data from an Excel file.
// A sheet component that fails to parse is logged and left empty; only
// failures to open the workbook are returned.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open %s", path), ErrInvalidFormat)
	}
	defer f.Close()

	log := opts.logger().With("book", filepath.Base(path))
	sheets := make(map[string]models.SheetData)

	for _, sheetName := range f.GetSheetList() {
		var sheet models.SheetData

		rows, err := parser.ExtractCells(f, sheetName, opts.ShouldIncludeLinks())
		if err != nil {
			warn(log, NewExtractionError(sheetName, "cells", err))
		}
		sheet.Rows = rows

		tables, err := parser.DetectTables(f, sheetName, parser.DefaultTableParams())
		if err != nil {
			warn(log, NewExtractionError(sheetName, "tables", err))
			tables = nil
		}
		sheet.TableCandidates = tables

		sheets[sheetName] = sheet
	}

	if opts.Mode != ModeLight {
		drawings, err := parser.ExtractDrawings(path, opts.Mode == ModeVerbose)
		if err != nil {
			warn(log, NewExtractionError("", "drawings", err))
		}
		for sheetName, sd := range drawings {
			sheet, ok := sheets[sheetName]
			if !ok {
				continue
			}
			sheet.Shapes = sd.Shapes
			sheet.Charts = sd.Charts
			sheets[sheetName] = sheet
		}
	}

	if opts.ShouldIncludePrintAreas() {
		printAreas, err := parser.ExtractPrintAreas(f)
		if err != nil {
			warn(log, NewExtractionError("", "print_areas", err))
		}
		for sheetName, areas := range printAreas {
			sheet, ok := sheets[sheetName]
			if !ok {
				log.Debug("print area refers to unknown sheet", "sheet", sheetName)
				continue
			}
			sheet.PrintAreas = areas
			sheets[sheetName] = sheet
		}
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

func warn(log *slog.Logger, err *ExtractionError) {
	log.Warn("extraction failed, continuing", "sheet", err.SheetName, "component", err.Component, "err", err.Err)
}
