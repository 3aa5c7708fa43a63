package models

import "github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the reference holding the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the reference holding category (X axis) values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the reference holding Y axis values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata including series and layout.
type Chart struct {
	// Name is the chart object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g. Bar, Line, Pie).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the value axis [min, max] when both are fixed.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Anchor is the block of cells the chart is drawn over.
	Anchor *cellrange.Range `json:"anchor,omitempty"`
	// W is the chart width in pixels (verbose mode only).
	W *int `json:"w,omitempty"`
	// H is the chart height in pixels (verbose mode only).
	H *int `json:"h,omitempty"`
	// Series is the list of series plotted by the chart.
	Series []ChartSeries `json:"series"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
}

// DataRanges returns the parseable series references that live on sheetName.
// References without a sheet prefix are assumed to be on sheetName.
func (c Chart) DataRanges(sheetName string) []cellrange.Range {
	var out []cellrange.Range
	for _, s := range c.Series {
		for _, ref := range []string{s.NameRange, s.XRange, s.YRange} {
			if ref == "" {
				continue
			}
			sheet, r, err := cellrange.ParseSheetRef(ref)
			if err != nil || (sheet != "" && sheet != sheetName) {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}
