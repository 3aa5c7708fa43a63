package sheetrange

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

func TestDefaultChecksPass(t *testing.T) {
	results := RunChecks(DefaultChecks())
	require.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.Passed(), "%s: %s vs %s got %v", r.Name, r.A, r.B, r.Got)
	}
	assert.Empty(t, Failed(results))
}

func TestRunChecksReportsFailures(t *testing.T) {
	results := RunChecks([]Check{
		{Name: "wrong expectation", A: "A1:C2", B: "D1:E2", Want: true},
		{Name: "bad ref", A: "A1:", B: "B1", Want: true},
	})

	require.Len(t, results, 2)
	assert.False(t, results[0].Passed())
	assert.NoError(t, results[0].Err)
	assert.False(t, results[0].Got)

	assert.False(t, results[1].Passed())
	assert.True(t, errors.Is(results[1].Err, cellrange.ErrInvalidReference))

	assert.Len(t, Failed(results), 2)
}
