package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetrange/pkg/sheetrange"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the built-in range intersection checks",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	return reportChecks(cmd, sheetrange.RunChecks(sheetrange.DefaultChecks()))
}

func reportChecks(cmd *cobra.Command, results []sheetrange.CheckResult) error {
	out := cmd.OutOrStdout()
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)

	for _, r := range results {
		if r.Passed() {
			pass.Fprint(out, "PASS")
		} else {
			fail.Fprint(out, "FAIL")
		}
		fmt.Fprintf(out, " %-22s %s vs %s (want %v)", r.Name, r.A, r.B, r.Want)
		if r.Err != nil {
			fmt.Fprintf(out, ": %v", r.Err)
		}
		fmt.Fprintln(out)
	}

	if failed := sheetrange.Failed(results); len(failed) > 0 {
		return errors.Newf("%d of %d checks failed", len(failed), len(results))
	}
	return nil
}
