// Package docx reads and writes DOCX (WordProcessingML) archives with run-level access.
package docx

import (
	"encoding/xml"
	"strings"

	"github.com/antchfx/xmlquery"
)

// IsWordElement reports whether n is a WordProcessingML element (w: prefix)
// with the given local name.
func IsWordElement(n *xmlquery.Node, local string) bool {
	return n != nil && n.Type == xmlquery.ElementNode && n.Prefix == "w" && n.Data == local
}

// NewElement creates an empty w: element with the given local name.
func NewElement(local string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.ElementNode, Prefix: "w", Data: local}
}

// CloneNode deep-copies an element subtree, detached from any parent.
func CloneNode(n *xmlquery.Node) *xmlquery.Node {
	if n == nil {
		return nil
	}
	clone := &xmlquery.Node{
		Type:         n.Type,
		Data:         n.Data,
		Prefix:       n.Prefix,
		NamespaceURI: n.NamespaceURI,
		Attr:         append([]xmlquery.Attr(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		xmlquery.AddChild(clone, CloneNode(child))
	}
	return clone
}

// RunText returns the concatenated text content of every w:t element under n.
// It works for runs and for hyperlink elements wrapping runs.
func RunText(n *xmlquery.Node) string {
	var sb strings.Builder
	var walk func(*xmlquery.Node)
	walk = func(cur *xmlquery.Node) {
		if IsWordElement(cur, "t") {
			sb.WriteString(cur.InnerText())
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// RunProperties returns the w:rPr child of a run, or nil when the run carries
// default formatting.
func RunProperties(run *xmlquery.Node) *xmlquery.Node {
	for c := run.FirstChild; c != nil; c = c.NextSibling {
		if IsWordElement(c, "rPr") {
			return c
		}
	}
	return nil
}

// NewRun builds a w:r element carrying value, with rPr deep-copied so the
// replacement inherits the formatting of the run it substitutes into.
// Newlines in value become w:br elements; a literal newline inside w:t would
// collapse when the document is rendered.
func NewRun(rPr *xmlquery.Node, value string) *xmlquery.Node {
	run := NewElement("r")
	if rPr != nil {
		xmlquery.AddChild(run, CloneNode(rPr))
	}
	appendRunText(run, value)
	return run
}

// NewHyperlink builds a w:hyperlink element referencing relationship rID,
// wrapping a single run with the given display text. The run inherits rPr
// with hyperlink color and underline applied on top.
func NewHyperlink(rID, display string, rPr *xmlquery.Node) *xmlquery.Node {
	link := NewElement("hyperlink")
	link.Attr = []xmlquery.Attr{
		{Name: xml.Name{Space: "r", Local: "id"}, Value: rID},
	}

	props := NewElement("rPr")
	if rPr != nil {
		props = CloneNode(rPr)
		removeWordChildren(props, "color", "u")
	}

	color := NewElement("color")
	color.Attr = []xmlquery.Attr{{Name: xml.Name{Space: "w", Local: "val"}, Value: "0563C1"}}
	xmlquery.AddChild(props, color)

	underline := NewElement("u")
	underline.Attr = []xmlquery.Attr{{Name: xml.Name{Space: "w", Local: "val"}, Value: "single"}}
	xmlquery.AddChild(props, underline)

	run := NewElement("r")
	xmlquery.AddChild(run, props)
	appendRunText(run, display)
	xmlquery.AddChild(link, run)

	return link
}

func appendRunText(run *xmlquery.Node, value string) {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if i > 0 {
			xmlquery.AddChild(run, NewElement("br"))
		}
		t := NewElement("t")
		t.Attr = []xmlquery.Attr{{Name: xml.Name{Space: "xml", Local: "space"}, Value: "preserve"}}
		xmlquery.AddChild(t, &xmlquery.Node{Type: xmlquery.TextNode, Data: line})
		xmlquery.AddChild(run, t)
	}
}

// setChildren replaces the entire child list of parent.
func setChildren(parent *xmlquery.Node, kids []*xmlquery.Node) {
	parent.FirstChild = nil
	parent.LastChild = nil
	for _, k := range kids {
		k.Parent = nil
		k.PrevSibling = nil
		k.NextSibling = nil
		xmlquery.AddChild(parent, k)
	}
}

func removeWordChildren(parent *xmlquery.Node, locals ...string) {
	var kept []*xmlquery.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		remove := false
		for _, local := range locals {
			if IsWordElement(c, local) {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, c)
		}
	}
	setChildren(parent, kept)
}
