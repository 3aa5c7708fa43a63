package parser

import (
	"testing"
)

const chartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:p><a:r><a:t>Monthly </a:t></a:r><a:r><a:t>Sales</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:plotArea>
      <c:barChart>
        <c:barDir val="col"/>
        <c:ser>
          <c:idx val="0"/>
          <c:tx><c:strRef><c:f>Sheet1!$A$2</c:f><c:strCache><c:pt idx="0"><c:v>Apples</c:v></c:pt></c:strCache></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Sheet1!$B$1:$D$1</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Sheet1!$B$2:$D$2</c:f><c:numCache><c:pt idx="0"><c:v>5</c:v></c:pt></c:numCache></c:numRef></c:val>
        </c:ser>
      </c:barChart>
      <c:lineChart>
        <c:ser>
          <c:tx><c:v>Target</c:v></c:tx>
          <c:val><c:numRef><c:f>'Plan Data'!$B$3:$D$3</c:f></c:numRef></c:val>
        </c:ser>
      </c:lineChart>
      <c:catAx><c:title><c:tx><c:rich><a:p><a:r><a:t>Month</a:t></a:r></a:p></c:rich></c:tx></c:title></c:catAx>
      <c:valAx>
        <c:scaling><c:orientation val="minMax"/><c:max val="100"/><c:min val="0"/></c:scaling>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>Units</a:t></a:r></a:p></c:rich></c:tx></c:title>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	chart := parseChartXML([]byte(chartXML))

	if chart.ChartType != "Bar" {
		t.Errorf("Expected chart type Bar, got %q", chart.ChartType)
	}
	if chart.Title != "Monthly Sales" {
		t.Errorf("Expected title 'Monthly Sales', got %q", chart.Title)
	}
	if chart.YAxisTitle != "Units" {
		t.Errorf("Expected y axis title 'Units', got %q", chart.YAxisTitle)
	}
	if len(chart.YAxisRange) != 2 || chart.YAxisRange[0] != 0 || chart.YAxisRange[1] != 100 {
		t.Errorf("Expected y axis range [0 100], got %v", chart.YAxisRange)
	}

	if len(chart.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(chart.Series))
	}
	s := chart.Series[0]
	if s.Name != "Apples" || s.NameRange != "Sheet1!$A$2" {
		t.Errorf("Unexpected series name %q (%q)", s.Name, s.NameRange)
	}
	if s.XRange != "Sheet1!$B$1:$D$1" || s.YRange != "Sheet1!$B$2:$D$2" {
		t.Errorf("Unexpected series ranges %q, %q", s.XRange, s.YRange)
	}
	if s := chart.Series[1]; s.Name != "Target" || s.NameRange != "" || s.YRange != "'Plan Data'!$B$3:$D$3" {
		t.Errorf("Unexpected second series %+v", s)
	}

	// The series references feed print-area filtering.
	ranges := chart.DataRanges("Sheet1")
	if len(ranges) != 3 {
		t.Errorf("Expected 3 ranges on Sheet1, got %v", ranges)
	}
}

func TestParseChartXMLUnknownType(t *testing.T) {
	chart := parseChartXML([]byte(`<c:chartSpace xmlns:c="c"><c:chart><c:plotArea/></c:chart></c:chartSpace>`))
	if chart.ChartType != "unknown" {
		t.Errorf("Expected chart type unknown, got %q", chart.ChartType)
	}
	if len(chart.Series) != 0 {
		t.Errorf("Expected no series, got %v", chart.Series)
	}
}
