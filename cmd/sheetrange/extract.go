package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetrange/pkg/sheetrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/output"
)

var (
	outputPath    string
	pretty        bool
	mode          string
	sheetsDir     string
	printAreasDir string
	configPath    string
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.xlsx]",
	Short: "Extract structured data from an Excel file",
	Long: `Extract cells, table candidates, shapes, charts and print areas from an
Excel file and output JSON. Per-print-area files hold only the rows, tables and
drawings inside each area.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().StringVar(&mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	extractCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	extractCmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	extractCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
}

// resolveOptions merges the config file with flags; flags set on the command
// line win.
func resolveOptions(cmd *cobra.Command) (sheetrange.Options, bool, error) {
	opts := sheetrange.DefaultOptions()
	usePretty := pretty

	if configPath != "" {
		cfg, err := sheetrange.LoadConfig(configPath)
		if err != nil {
			return opts, false, err
		}
		opts = cfg.Options()
		if !cmd.Flags().Changed("pretty") {
			usePretty = cfg.Pretty
		}
	}

	if configPath == "" || cmd.Flags().Changed("mode") {
		m, err := sheetrange.ParseMode(mode)
		if err != nil {
			return opts, false, err
		}
		opts.Mode = m
	}

	return opts, usePretty, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Parse mode and config
	opts, usePretty, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	// Extract data
	wb, err := sheetrange.Extract(inputPath, opts)
	if err != nil {
		return errors.Wrap(err, "extraction failed")
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(wb, usePretty)
	if err != nil {
		return errors.Wrap(err, "serialization failed")
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	} else if sheetsDir == "" && printAreasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir, usePretty); err != nil {
			return errors.Wrap(err, "failed to write sheet files")
		}
	}

	// Write per-print-area files
	if printAreasDir != "" {
		if err := writePrintAreaFiles(wb, printAreasDir, usePretty); err != nil {
			return errors.Wrap(err, "failed to write print area files")
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, view := range sheetrange.PrintAreaViews(wb) {
		counts[view.SheetName]++
		jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", view.SheetName, counts[view.SheetName]))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
