package parser

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

// PresetGeomMap maps OOXML preset geometry names to human-readable type labels.
var PresetGeomMap = map[string]string{
	"flowChartProcess":           "AutoShape-FlowchartProcess",
	"flowChartDecision":          "AutoShape-FlowchartDecision",
	"flowChartTerminator":        "AutoShape-FlowchartTerminator",
	"flowChartData":              "AutoShape-FlowchartData",
	"flowChartDocument":          "AutoShape-FlowchartDocument",
	"flowChartPredefinedProcess": "AutoShape-FlowchartPredefinedProcess",
	"flowChartConnector":         "AutoShape-FlowchartConnector",
	"rect":                       "AutoShape-Rectangle",
	"roundRect":                  "AutoShape-RoundedRectangle",
	"ellipse":                    "AutoShape-Oval",
	"diamond":                    "AutoShape-Diamond",
	"triangle":                   "AutoShape-IsoscelesTriangle",
	"rightArrow":                 "AutoShape-RightArrow",
	"leftArrow":                  "AutoShape-LeftArrow",
	"straightConnector1":         "Line",
	"bentConnector2":             "AutoShape-Connector",
	"bentConnector3":             "AutoShape-Connector",
	"curvedConnector3":           "AutoShape-Connector",
	"line":                       "Line",
	"textBox":                    "TextBox",
}

// ArrowHeadMap maps OOXML line end types to Excel arrow style numbers.
var ArrowHeadMap = map[string]int{
	"none":     1,
	"triangle": 2,
	"arrow":    2,
	"stealth":  3,
	"diamond":  4,
	"oval":     5,
}

// shapeParseResult holds a shape with the raw ids needed to link connectors.
type shapeParseResult struct {
	shape       models.Shape
	excelID     string
	isConnector bool
	startCxnID  string
	endCxnID    string
}

// parseShapeElement reads an xdr:sp or xdr:cxnSp element. It returns nil
// when the shape is filtered out.
func parseShapeElement(d *xml.Decoder, isCxnSp, verbose bool) *shapeParseResult {
	var (
		pr                       shapeParseResult
		text                     strings.Builder
		name, prst               string
		left, top, width, height int
		flipH, flipV             bool
	)

	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "cNvPr":
			pr.excelID = attr(se, "id")
			name = attr(se, "name")
		case "prstGeom":
			prst = attr(se, "prst")
		case "xfrm":
			flipH, flipV = attr(se, "flipH") == "1", attr(se, "flipV") == "1"
			left, top, width, height, pr.shape.Rotation = parseXfrm(d, se)
			return true
		case "p":
			if text.Len() > 0 {
				text.WriteString("\n")
			}
		case "t":
			text.WriteString(elementText(d, se))
			return true
		case "ln":
			pr.shape.BeginArrowStyle, pr.shape.EndArrowStyle = parseLineArrows(d)
			return true
		case "stCxn":
			pr.startCxnID = attr(se, "id")
		case "endCxn":
			pr.endCxnID = attr(se, "id")
		}
		return false
	})

	typeLabel := shapeTypeLabel(prst, name)
	pr.isConnector = isCxnSp || isConnectorShape(prst, typeLabel)
	pr.shape.Text = strings.TrimSpace(text.String())
	if !shouldIncludeShape(pr.shape.Text, typeLabel, pr.isConnector, verbose) {
		return nil
	}

	pr.shape.Type = typeLabel
	pr.shape.L, pr.shape.T = left, top
	if verbose {
		pr.shape.W, pr.shape.H = &width, &height
	}
	if pr.isConnector {
		dx, dy := width, height
		if flipH {
			dx = -dx
		}
		if flipV {
			dy = -dy
		}
		pr.shape.Direction = computeDirection(dx, dy)
	} else {
		// Arrow styles only mean something on connectors.
		pr.shape.BeginArrowStyle, pr.shape.EndArrowStyle = nil, nil
	}
	return &pr
}

func shapeTypeLabel(prst, name string) string {
	switch {
	case prst != "":
		if label, ok := PresetGeomMap[prst]; ok {
			return label
		}
		return "AutoShape-" + prst
	case name != "":
		return name
	default:
		return "Unknown"
	}
}

// parseGroupShape flattens a group into its member shapes.
func parseGroupShape(d *xml.Decoder, verbose bool) []shapeParseResult {
	var results []shapeParseResult
	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "sp", "cxnSp":
			if pr := parseShapeElement(d, se.Name.Local == "cxnSp", verbose); pr != nil {
				results = append(results, *pr)
			}
			return true
		case "grpSp":
			results = append(results, parseGroupShape(d, verbose)...)
			return true
		}
		return false
	})
	return results
}

// parseXfrm reads an a:xfrm element: offset and extent in pixels, rotation
// in degrees (nil when zero).
func parseXfrm(d *xml.Decoder, start xml.StartElement) (left, top, width, height int, rotation *float64) {
	if rot, err := strconv.ParseInt(attr(start, "rot"), 10, 64); err == nil {
		// OOXML angles are in 60000ths of a degree.
		deg := float64(rot) / 60000.0
		if math.Abs(deg) >= 1e-6 {
			rotation = &deg
		}
	}

	pixels := func(se xml.StartElement, name string) int {
		v, err := strconv.ParseInt(attr(se, name), 10, 64)
		if err != nil {
			return 0
		}
		return EMUToPixels(v)
	}

	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "off":
			left, top = pixels(se, "x"), pixels(se, "y")
		case "ext":
			width, height = pixels(se, "cx"), pixels(se, "cy")
		}
		return false
	})
	return
}

// parseLineArrows reads the head and tail end styles of an a:ln element.
func parseLineArrows(d *xml.Decoder) (beginStyle, endStyle *int) {
	descend(d, func(se xml.StartElement) bool {
		style, ok := ArrowHeadMap[attr(se, "type")]
		if !ok {
			return false
		}
		switch se.Name.Local {
		case "headEnd":
			beginStyle = &style
		case "tailEnd":
			endStyle = &style
		}
		return false
	})
	return
}

// computeDirection computes the compass heading of a connector from its
// extent. Screen y grows downwards.
func computeDirection(width, height int) string {
	if width == 0 && height == 0 {
		return ""
	}

	angle := math.Atan2(float64(-height), float64(width)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	headings := []string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}
	return headings[int(math.Mod(angle+22.5, 360)/45)]
}

// isConnectorShape checks if a shape is a connector or line.
func isConnectorShape(prst, typeLabel string) bool {
	p := strings.ToLower(prst)
	if strings.Contains(p, "connector") || strings.Contains(p, "line") {
		return true
	}
	return strings.Contains(typeLabel, "Line") || strings.Contains(typeLabel, "Connector")
}

// shouldIncludeShape keeps every shape in verbose mode, and otherwise only
// shapes with text, connectors and arrows.
func shouldIncludeShape(text, typeLabel string, isConnector, verbose bool) bool {
	if verbose {
		return true
	}
	return text != "" || isConnector || strings.Contains(typeLabel, "Arrow")
}

// assignShapeIDs numbers non-connector shapes from 1 in document order and
// points connectors at the numbers of the shapes they join.
func assignShapeIDs(results []shapeParseResult) {
	ids := make(map[string]int)
	next := 0

	for i := range results {
		if results[i].isConnector || results[i].excelID == "" {
			continue
		}
		next++
		id := next
		results[i].shape.ID = &id
		ids[results[i].excelID] = id
	}

	for i := range results {
		if !results[i].isConnector {
			continue
		}
		if id, ok := ids[results[i].startCxnID]; ok {
			results[i].shape.BeginID = &id
		}
		if id, ok := ids[results[i].endCxnID]; ok {
			results[i].shape.EndID = &id
		}
	}
}
