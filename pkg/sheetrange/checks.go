package sheetrange

import (
	"github.com/cockroachdb/errors"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

// Check is a named intersection test between two A1 references.
type Check struct {
	Name string
	A    string
	B    string
	Want bool
}

// CheckResult is the outcome of running a Check.
type CheckResult struct {
	Check
	Got bool
	Err error
}

// Passed reports whether the check ran and produced the wanted result.
func (r CheckResult) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

// DefaultChecks returns the built-in intersection scenarios.
func DefaultChecks() []Check {
	return []Check{
		{Name: "matches", A: "A1:C2", B: "A1:C2", Want: true},
		{Name: "contains", A: "A1:C2", B: "B1", Want: true},
		{Name: "inverse contains", A: "B1", B: "A1:C2", Want: true},
		{Name: "does not intersect", A: "A1:C2", B: "D1:E2", Want: false},
		{Name: "intersects a column", A: "A1:C2", B: "B:B", Want: true},
	}
}

// RunChecks evaluates each check in order.
func RunChecks(checks []Check) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, runCheck(c))
	}
	return results
}

func runCheck(c Check) CheckResult {
	res := CheckResult{Check: c}
	a, err := cellrange.Parse(c.A)
	if err != nil {
		res.Err = errors.Wrapf(err, "check %q: range A", c.Name)
		return res
	}
	b, err := cellrange.Parse(c.B)
	if err != nil {
		res.Err = errors.Wrapf(err, "check %q: range B", c.Name)
		return res
	}
	res.Got = cellrange.Intersects(a, b)
	return res
}

// Failed returns the results that did not pass.
func Failed(results []CheckResult) []CheckResult {
	var failed []CheckResult
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}
