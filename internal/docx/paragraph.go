// Package docx reads and writes DOCX (WordProcessingML) archives with run-level access.
package docx

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Paragraph wraps a w:p element.
type Paragraph struct {
	node *xmlquery.Node
}

// Properties returns the paragraph's w:pPr element, or nil. Paragraph
// properties (style, alignment, numbering) are never modified by rewriting.
func (p *Paragraph) Properties() *xmlquery.Node {
	for c := p.node.FirstChild; c != nil; c = c.NextSibling {
		if IsWordElement(c, "pPr") {
			return c
		}
	}
	return nil
}

// Children returns the paragraph's content children in order, excluding the
// w:pPr element. This includes runs, hyperlinks, and inert markers such as
// bookmarks and proofing errors.
func (p *Paragraph) Children() []*xmlquery.Node {
	var kids []*xmlquery.Node
	for c := p.node.FirstChild; c != nil; c = c.NextSibling {
		if IsWordElement(c, "pPr") {
			continue
		}
		kids = append(kids, c)
	}
	return kids
}

// Text returns the paragraph's visible text: the concatenation of all run and
// hyperlink text in order.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, c := range p.Children() {
		if IsWordElement(c, "r") || IsWordElement(c, "hyperlink") {
			sb.WriteString(RunText(c))
		}
	}
	return sb.String()
}

// ReplaceContent swaps the paragraph's content children for kids, keeping the
// w:pPr element (if any) in its leading position.
func (p *Paragraph) ReplaceContent(kids []*xmlquery.Node) {
	all := make([]*xmlquery.Node, 0, len(kids)+1)
	if pPr := p.Properties(); pPr != nil {
		all = append(all, pPr)
	}
	all = append(all, kids...)
	setChildren(p.node, all)
}
