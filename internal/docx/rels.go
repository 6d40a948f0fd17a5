// Package docx reads and writes DOCX (WordProcessingML) archives with run-level access.
package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

const hyperlinkRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"

const emptyRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// AddHyperlinkRel appends an external hyperlink relationship for url to the
// document's relationships part and returns its relationship ID.
func (d *Document) AddHyperlinkRel(url string) (string, error) {
	if d.rels == nil {
		if err := d.loadRels(); err != nil {
			return "", err
		}
	}

	relationships := xmlquery.FindOne(d.rels, "//Relationships")
	if relationships == nil {
		return "", &UnresolvableTemplateError{
			Message: "document relationships part has no Relationships root",
		}
	}

	rID := d.nextRelID()
	rel := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Relationship"}
	rel.Attr = []xmlquery.Attr{
		{Name: xml.Name{Local: "Id"}, Value: rID},
		{Name: xml.Name{Local: "Type"}, Value: hyperlinkRelType},
		{Name: xml.Name{Local: "Target"}, Value: url},
		{Name: xml.Name{Local: "TargetMode"}, Value: "External"},
	}
	xmlquery.AddChild(relationships, rel)
	d.relsDirty = true

	return rID, nil
}

func (d *Document) loadRels() error {
	data, ok := d.part(relsPartName)
	if !ok {
		// Templates without a document rels part get a fresh one.
		data = []byte(emptyRelsXML)
		d.parts = append(d.parts, part{name: relsPartName, data: data})
	}

	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return &UnresolvableTemplateError{
			Message: "failed to parse word/_rels/document.xml.rels",
			Cause:   err,
		}
	}
	d.rels = root
	return nil
}

func (d *Document) nextRelID() string {
	max := 0
	for _, rel := range xmlquery.Find(d.rels, "//Relationship") {
		id := rel.SelectAttr("Id")
		if !strings.HasPrefix(id, "rId") {
			continue
		}
		if n, err := strconv.Atoi(id[len("rId"):]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("rId%d", max+1)
}
