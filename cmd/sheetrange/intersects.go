package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

// errNoIntersection is returned with --exit-code when the ranges are disjoint.
var errNoIntersection = errors.New("ranges do not intersect")

var exitCode bool

var intersectsCmd = &cobra.Command{
	Use:   "intersects <rangeA> <rangeB>",
	Short: "Report whether two cell ranges intersect",
	Long: `Report whether two A1-style cell ranges share at least one cell.
Whole columns (B:B) and whole rows (2:2) are supported. Ranges touching at an
edge intersect.`,
	Example: `  sheetrange intersects A1:C2 B:B
  sheetrange intersects --exit-code A1:C2 D1:E2`,
	Args: cobra.ExactArgs(2),
	RunE: runIntersects,
}

func init() {
	intersectsCmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when the ranges do not intersect")
}

func runIntersects(cmd *cobra.Command, args []string) error {
	a, err := cellrange.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := cellrange.Parse(args[1])
	if err != nil {
		return err
	}

	ok := cellrange.Intersects(a, b)
	out := cmd.OutOrStdout()
	if ok {
		color.New(color.FgGreen).Fprintln(out, "true")
		if overlap, found := a.Intersection(b); found && verbose {
			fmt.Fprintf(out, "overlap: %s\n", overlap)
		}
		return nil
	}

	color.New(color.FgRed).Fprintln(out, "false")
	if exitCode {
		return errNoIntersection
	}
	return nil
}
