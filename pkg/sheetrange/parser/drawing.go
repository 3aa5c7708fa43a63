package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"

	"github.com/cockroachdb/errors"

	"github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"
	"github.com/ukaji3/sheetrange/pkg/sheetrange/models"
)

// SheetDrawings holds the drawing objects placed on one sheet.
type SheetDrawings struct {
	Shapes []models.Shape
	Charts []models.Chart
}

// ExtractDrawings extracts shapes and charts from an xlsx file, keyed by
// sheet name. In verbose mode every shape is kept and sizes are reported;
// otherwise only shapes with text, connectors and arrows are kept.
// Sheets whose drawing parts cannot be read are skipped.
func ExtractDrawings(xlsxPath string, verbose bool) (map[string]SheetDrawings, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", xlsxPath)
	}
	defer r.Close()

	pkg := newPackage(&r.Reader)
	sheets, err := pkg.sheetParts()
	if err != nil {
		return nil, err
	}

	result := make(map[string]SheetDrawings)
	for sheetName, sheetPart := range sheets {
		drawingPart := pkg.related(sheetPart, relDrawing)
		if drawingPart == "" {
			continue
		}
		data, err := pkg.read(drawingPart)
		if err != nil {
			continue
		}

		d := parseDrawingXML(data, verbose)
		assignShapeIDs(d.shapes)

		var sd SheetDrawings
		for _, pr := range d.shapes {
			sd.Shapes = append(sd.Shapes, pr.shape)
		}
		sd.Charts = pkg.charts(drawingPart, d.frames, verbose)
		result[sheetName] = sd
	}

	return result, nil
}

// drawing is the parsed content of one drawing part, in document order.
type drawing struct {
	shapes []shapeParseResult
	frames []chartFrame
}

// cellMarker is an xdr:from or xdr:to anchor point. Col and Row are 0-based.
type cellMarker struct {
	Col int `xml:"col"`
	Row int `xml:"row"`
}

func parseDrawingXML(data []byte, verbose bool) drawing {
	var out drawing
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := d.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			parseAnchor(d, &out, verbose)
		}
	}
	return out
}

// parseAnchor reads one anchor element. Every object inside it shares the
// anchor's cell range.
func parseAnchor(d *xml.Decoder, out *drawing, verbose bool) {
	var from, to *cellMarker
	var shapes []shapeParseResult
	var frames []chartFrame

	descend(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "from", "to":
			var m cellMarker
			if err := d.DecodeElement(&m, &se); err == nil {
				if se.Name.Local == "from" {
					from = &m
				} else {
					to = &m
				}
			}
			return true
		case "sp", "cxnSp":
			if pr := parseShapeElement(d, se.Name.Local == "cxnSp", verbose); pr != nil {
				shapes = append(shapes, *pr)
			}
			return true
		case "grpSp":
			shapes = append(shapes, parseGroupShape(d, verbose)...)
			return true
		case "graphicFrame":
			if f, ok := parseGraphicFrame(d); ok {
				frames = append(frames, f)
			}
			return true
		}
		return false
	})

	anchor := anchorRange(from, to)
	for i := range shapes {
		shapes[i].shape.Anchor = copyRange(anchor)
	}
	for i := range frames {
		frames[i].anchor = copyRange(anchor)
	}
	out.shapes = append(out.shapes, shapes...)
	out.frames = append(out.frames, frames...)
}

// anchorRange converts anchor markers to a 1-based cell range. A one-cell
// anchor covers its top-left cell; an absolute anchor has no range.
func anchorRange(from, to *cellMarker) *cellrange.Range {
	if from == nil {
		return nil
	}
	r := cellrange.Cell(from.Row+1, from.Col+1)
	if to != nil {
		r = cellrange.Range{R1: from.Row + 1, C1: from.Col + 1, R2: to.Row + 1, C2: to.Col + 1}.Normalize()
	}
	return &r
}

func copyRange(r *cellrange.Range) *cellrange.Range {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
