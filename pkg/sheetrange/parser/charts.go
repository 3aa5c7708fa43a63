package parser

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartFrame is a graphic frame in a drawing part that refers to a chart.
type chartFrame struct {
	name   string
	relID  string
	anchor *cellrange.Range
	left   int
	top    int
	width  int
	height int
}

// parseGraphicFrame reads an xdr:graphicFrame element. ok is false when the
// frame holds something other than a chart.
func parseGraphicFrame(d *xml.Decoder) (f chartFrame, ok bool) {
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "cNvPr":
			f.name = attr(se, "name")
		case "xfrm":
			f.left, f.top, f.width, f.height, _ = parseXfrm(d, se)
			return true
		case "chart":
			f.relID = attr(se, "id")
		}
		return false
	})
	return f, f.relID != ""
}

// charts resolves the chart parts of a drawing and parses them, keeping
// frame order. Frames whose part is missing or unreadable are skipped.
func (p *xlsxPackage) charts(drawingPart string, frames []chartFrame, verbose bool) []models.Chart {
	if len(frames) == 0 {
		return nil
	}

	rels, err := p.rels(drawingPart)
	if err != nil {
		return nil
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, relChart) {
			targets[rel.ID] = rel.Target
		}
	}

	var charts []models.Chart
	for _, f := range frames {
		target, ok := targets[f.relID]
		if !ok {
			continue
		}
		data, err := p.read(target)
		if err != nil {
			continue
		}

		chart := parseChartXML(data)
		chart.Name = f.name
		chart.Anchor = f.anchor
		chart.L, chart.T = f.left, f.top
		if verbose {
			w, h := f.width, f.height
			chart.W, chart.H = &w, &h
		}
		charts = append(charts, chart)
	}
	return charts
}

// parseChartXML reads the type, titles, value axis and series of a chart
// part. Placement fields are left to the caller.
func parseChartXML(data []byte) models.Chart {
	chart := models.Chart{ChartType: "unknown"}
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := d.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(d, &chart)
		}
	}
	return chart
}

func parseChartElement(d *xml.Decoder, chart *models.Chart) {
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			chart.Title = parseTitle(d)
			return true
		case "catAx", "dateAx", "serAx":
			_ = d.Skip()
			return true
		case "valAx":
			chart.YAxisTitle, chart.YAxisRange = parseValueAxis(d)
			return true
		}
		if ct, ok := ChartTypeMap[se.Name.Local]; ok {
			// Combination charts report the first plot type.
			if chart.ChartType == "unknown" {
				chart.ChartType = ct
			}
			chart.Series = append(chart.Series, parseSeries(d)...)
			return true
		}
		return false
	})
}

// parseTitle joins the text runs of a c:title element.
func parseTitle(d *xml.Decoder) string {
	var b strings.Builder
	descend(d, func(se xml.StartElement) bool {
		if se.Name.Local != "t" {
			return false
		}
		b.WriteString(elementText(d, se))
		return true
	})
	return strings.TrimSpace(b.String())
}

func parseSeries(d *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	descend(d, func(se xml.StartElement) bool {
		if se.Name.Local != "ser" {
			return false
		}
		series = append(series, parseSingleSeries(d))
		return true
	})
	return series
}

func parseSingleSeries(d *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "tx":
			s.NameRange, s.Name = parseReference(d)
		case "cat", "xVal":
			s.XRange, _ = parseReference(d)
		case "val", "yVal":
			s.YRange, _ = parseReference(d)
		default:
			return false
		}
		return true
	})
	return s
}

// parseReference returns the formula (c:f) and the first cached value (c:v)
// under the current element.
func parseReference(d *xml.Decoder) (formula, value string) {
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "f":
			formula = strings.TrimSpace(elementText(d, se))
		case "v":
			if v := strings.TrimSpace(elementText(d, se)); value == "" {
				value = v
			}
		default:
			return false
		}
		return true
	})
	return
}

func parseValueAxis(d *xml.Decoder) (title string, axisRange []float64) {
	var lo, hi *float64
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			title = parseTitle(d)
			return true
		case "min", "max":
			v, err := strconv.ParseFloat(attr(se, "val"), 64)
			if err != nil {
				return false
			}
			if se.Name.Local == "min" {
				lo = &v
			} else {
				hi = &v
			}
		}
		return false
	})

	if lo != nil && hi != nil {
		axisRange = []float64{*lo, *hi}
	}
	return
}
