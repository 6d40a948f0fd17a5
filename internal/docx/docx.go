// Package docx reads and writes DOCX (WordProcessingML) archives with run-level access.
//
// A DOCX file is a ZIP archive of XML parts. Only the main document part
// (word/document.xml) and, when hyperlinks are inserted, its relationships
// part are ever rewritten; every other part is copied through byte-for-byte
// so the output stays identical to the template outside of resolved text.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const (
	documentPartName = "word/document.xml"
	relsPartName     = "word/_rels/document.xml.rels"
)

// paragraphExpr selects every paragraph in the document body, including
// paragraphs nested inside table cells.
var paragraphExpr = xpath.MustCompile("//w:body//w:p")

type part struct {
	name string
	data []byte
}

// Document is an in-memory DOCX archive with the main document part parsed
// for editing. It is owned exclusively by the caller for the duration of one
// fill and is eligible for collection once the output is saved.
type Document struct {
	parts []part
	doc   *xmlquery.Node
	rels  *xmlquery.Node

	docDirty  bool
	relsDirty bool
}

// Open reads and parses a DOCX template from disk.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnresolvableTemplateError{
			Message: fmt.Sprintf("failed to read template file %s", path),
			Cause:   err,
		}
	}
	return OpenBytes(data)
}

// OpenBytes parses a DOCX template from memory.
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &UnresolvableTemplateError{
			Message: "template is not a valid DOCX archive",
			Cause:   err,
		}
	}

	d := &Document{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readZipFile(f)
		if err != nil {
			return nil, &UnresolvableTemplateError{
				Message: fmt.Sprintf("failed to read archive part %s", f.Name),
				Cause:   err,
			}
		}
		d.parts = append(d.parts, part{name: f.Name, data: content})
	}

	docData, ok := d.part(documentPartName)
	if !ok {
		return nil, &UnresolvableTemplateError{
			Message: "template has no word/document.xml part",
		}
	}

	root, err := xmlquery.Parse(bytes.NewReader(docData))
	if err != nil {
		return nil, &UnresolvableTemplateError{
			Message: "failed to parse word/document.xml",
			Cause:   err,
		}
	}
	d.doc = root

	return d, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

func (d *Document) part(name string) ([]byte, bool) {
	for _, p := range d.parts {
		if p.name == name {
			return p.data, true
		}
	}
	return nil, false
}

// Paragraphs returns every paragraph in document order, including paragraphs
// inside table cells.
func (d *Document) Paragraphs() []*Paragraph {
	nodes := xmlquery.QuerySelectorAll(d.doc, paragraphExpr)
	paragraphs := make([]*Paragraph, len(nodes))
	for i, n := range nodes {
		paragraphs[i] = &Paragraph{node: n}
	}
	return paragraphs
}

// MarkModified records that the main document part has been edited and must
// be re-serialized on save. Unmodified documents are written back from the
// original bytes untouched.
func (d *Document) MarkModified() {
	d.docDirty = true
}

// Save writes the archive to path. The output is written to a temporary file
// first and renamed into place, so a failed save leaves no partial artifact.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".resume-filler-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := d.writeArchive(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	renamed = true
	return nil
}

func (d *Document) writeArchive(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, p := range d.parts {
		data := p.data
		switch {
		case p.name == documentPartName && d.docDirty:
			data = serialize(d.doc)
		case p.name == relsPartName && d.relsDirty:
			data = serialize(d.rels)
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("failed to create archive part %s: %w", p.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("failed to write archive part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close output archive: %w", err)
	}
	return nil
}

func serialize(root *xmlquery.Node) []byte {
	return []byte(root.OutputXML(true))
}
