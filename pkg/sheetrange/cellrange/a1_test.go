package cellrange

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		ref      string
		expected Range
	}{
		{"B1", Range{R1: 1, C1: 2, R2: 1, C2: 2}},
		{"A1:C2", Range{R1: 1, C1: 1, R2: 2, C2: 3}},
		{"$A$1:$C$2", Range{R1: 1, C1: 1, R2: 2, C2: 3}},
		{"a1:c2", Range{R1: 1, C1: 1, R2: 2, C2: 3}},
		{"C2:A1", Range{R1: 1, C1: 1, R2: 2, C2: 3}},
		{"D1:E2", Range{R1: 1, C1: 4, R2: 2, C2: 5}},
		{"B:B", Range{R1: 1, C1: 2, R2: Unbounded, C2: 2}},
		{"$A:$C", Range{R1: 1, C1: 1, R2: Unbounded, C2: 3}},
		{"2:2", Range{R1: 2, C1: 1, R2: 2, C2: Unbounded}},
		{"5:3", Range{R1: 3, C1: 1, R2: 5, C2: Unbounded}},
		{"Sheet1!A1:B2", Range{R1: 1, C1: 1, R2: 2, C2: 2}},
		{" 'My Sheet'!$B$2 ", Range{R1: 2, C1: 2, R2: 2, C2: 2}},
		{"A:XFD", Range{R1: 1, C1: 1, R2: Unbounded, C2: Unbounded}},
		{"A1:XFD1", Range{R1: 1, C1: 1, R2: 1, C2: Unbounded}},
		{"B2:B1048576", Range{R1: 2, C1: 2, R2: Unbounded, C2: 2}},
		{"XFD1048576", Range{R1: MaxRows, C1: MaxCols, R2: MaxRows, C2: MaxCols}},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := Parse(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, ref := range []string{"", "B", "1", "A1:B", "A:2", "A1:B2:C3", "0:1", "A-1", "XFE1", "1A"} {
		t.Run(ref, func(t *testing.T) {
			_, err := Parse(ref)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidReference), "got %v", err)
		})
	}
}

func TestParseSheetRef(t *testing.T) {
	sheet, r, err := ParseSheetRef("'Bob''s Data'!$A$1:$D$10")
	require.NoError(t, err)
	assert.Equal(t, "Bob's Data", sheet)
	assert.Equal(t, Range{R1: 1, C1: 1, R2: 10, C2: 4}, r)

	sheet, _, err = ParseSheetRef("A1")
	require.NoError(t, err)
	assert.Empty(t, sheet)
}

func TestString(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{Range{R1: 1, C1: 2, R2: 1, C2: 2}, "B1"},
		{Range{R1: 1, C1: 1, R2: 2, C2: 3}, "A1:C2"},
		{WholeColumns(2, 2), "B:B"},
		{WholeColumns(1, 3), "A:C"},
		{WholeRows(2, 2), "2:2"},
		{Range{R1: 3, C1: 2, R2: Unbounded, C2: 2}, "B3:B1048576"},
		{Range{R1: 0, C1: 1, R2: 1, C2: 1}, "R0C1:R1C1"},
		{Range{R1: 1, C1: 1, R2: Unbounded, C2: Unbounded}, "A:XFD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.r.String())
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, ref := range []string{"B1", "A1:C2", "B:B", "A:C", "2:2", "1:3", "AA10:XFD1048576"} {
		r, err := Parse(ref)
		require.NoError(t, err)
		assert.Equal(t, ref, r.String())
	}
}

func TestStringParsesBack(t *testing.T) {
	ranges := []Range{
		{R1: 1, C1: 1, R2: Unbounded, C2: Unbounded},
		{R1: 4, C1: 1, R2: Unbounded, C2: Unbounded},
		{R1: 3, C1: 2, R2: Unbounded, C2: 2},
		WholeColumns(2, 4),
		WholeRows(7, 7),
		{R1: 2, C1: 3, R2: 5, C2: 9},
	}
	for _, r := range ranges {
		got, err := Parse(r.String())
		require.NoError(t, err, r.String())
		assert.Equal(t, r, got, r.String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a ref") })
	assert.NotPanics(t, func() { MustParse("A1") })
}
