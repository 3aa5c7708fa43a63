package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
)

func TestCellRowBounds(t *testing.T) {
	row := CellRow{R: 4, C: map[string]interface{}{"2": "a", "5": int64(1), "3": 2.5}}
	bounds, ok := row.Bounds()
	require.True(t, ok)
	assert.Equal(t, cellrange.Range{R1: 4, C1: 2, R2: 4, C2: 5}, bounds)

	_, ok = CellRow{R: 1, C: map[string]interface{}{}}.Bounds()
	assert.False(t, ok)
}

func TestCellRowClip(t *testing.T) {
	row := CellRow{
		R:     2,
		C:     map[string]interface{}{"1": "a", "2": "b", "4": "d"},
		Links: map[string]string{"2": "https://example.com", "4": "https://example.org"},
	}

	clipped, ok := row.Clip(cellrange.MustParse("B1:C5"))
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"2": "b"}, clipped.C)
	assert.Equal(t, map[string]string{"2": "https://example.com"}, clipped.Links)

	_, ok = row.Clip(cellrange.MustParse("E:F"))
	assert.False(t, ok)
}

func TestPrintAreaJSON(t *testing.T) {
	area := PrintArea{Range: cellrange.Range{R1: 1, C1: 2, R2: 3, C2: 4}}
	data, err := json.Marshal(area)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r1":1,"c1":2,"r2":3,"c2":4}`, string(data))
}

func TestChartDataRanges(t *testing.T) {
	chart := Chart{Series: []ChartSeries{
		{NameRange: "Sheet1!$B$1", XRange: "Sheet1!$A$2:$A$5", YRange: "Sheet1!$B$2:$B$5"},
		{YRange: "Other!$C$2:$C$5"},
		{YRange: "(Sheet1!$D$2,Sheet1!$D$4)"},
		{YRange: "$E$2:$E$3"},
	}}

	assert.Equal(t, []cellrange.Range{
		cellrange.MustParse("B1"),
		cellrange.MustParse("A2:A5"),
		cellrange.MustParse("B2:B5"),
		cellrange.MustParse("E2:E3"),
	}, chart.DataRanges("Sheet1"))
}
