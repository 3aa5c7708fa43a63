package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	relWorksheet = "/worksheet"
	relDrawing   = "/drawing"
	relChart     = "/chart"

	workbookPart = "xl/workbook.xml"
)

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	Items []relationship `xml:"Relationship"`
}

type workbookSheets struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

// xlsxPackage gives access to the raw parts of an xlsx zip, for the drawing
// data excelize does not expose.
type xlsxPackage struct {
	files map[string]*zip.File
}

func newPackage(r *zip.Reader) *xlsxPackage {
	p := &xlsxPackage{files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		p.files[f.Name] = f
	}
	return p
}

func (p *xlsxPackage) read(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open part %s", name)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// rels returns the relationships of part, with targets resolved to package
// paths. A part without a rels file has no relationships.
func (p *xlsxPackage) rels(part string) ([]relationship, error) {
	relsPart := path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
	if _, ok := p.files[relsPart]; !ok {
		return nil, nil
	}
	data, err := p.read(relsPart)
	if err != nil {
		return nil, err
	}

	var doc relationships
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse %s", relsPart)
	}
	for i := range doc.Items {
		doc.Items[i].Target = resolveTarget(part, doc.Items[i].Target)
	}
	return doc.Items, nil
}

// related returns the first target of part whose relationship type ends in
// relType, or "".
func (p *xlsxPackage) related(part, relType string) string {
	rels, err := p.rels(part)
	if err != nil {
		return ""
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, relType) {
			return rel.Target
		}
	}
	return ""
}

// sheetParts maps each sheet name to its worksheet part.
func (p *xlsxPackage) sheetParts() (map[string]string, error) {
	data, err := p.read(workbookPart)
	if err != nil {
		return nil, err
	}
	var wb workbookSheets
	if err := xml.Unmarshal(data, &wb); err != nil {
		return nil, errors.Wrapf(err, "parse %s", workbookPart)
	}

	rels, err := p.rels(workbookPart)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, relWorksheet) {
			targets[rel.ID] = rel.Target
		}
	}

	result := make(map[string]string, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if target, ok := targets[sheet.RID]; ok {
			result[sheet.Name] = target
		}
	}
	return result, nil
}

// resolveTarget resolves a relationship target against the part owning the
// relationship. Absolute targets are relative to the package root.
func resolveTarget(part, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(part), target)
}

// descend walks the children of the element whose start tag was just read,
// at any depth, calling fn for each start element. fn returns true when it
// consumed the element through its end tag; otherwise the walk enters it.
func descend(d *xml.Decoder, fn func(se xml.StartElement) bool) {
	depth := 1
	for depth > 0 {
		token, err := d.Token()
		if err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !fn(t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// elementText reads the character data of se through its end tag.
func elementText(d *xml.Decoder, se xml.StartElement) string {
	var s string
	if err := d.DecodeElement(&s, &se); err != nil {
		return ""
	}
	return s
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
