// Package rewriter substitutes {{KEY}} placeholders in a DOCX document while
// preserving run-level formatting.
//
// Document editors routinely split a single {{KEY}} token across several
// differently-styled runs as an artifact of editing. Matching is therefore
// done on the paragraph's logical text, a concatenation of all run text with
// a per-character map back to the originating run. Replacements are
// materialized as new runs inheriting the formatting of the first run each
// match overlaps; runs wholly outside a match keep their original nodes,
// boundaries, and formatting.
package rewriter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/jonathan/resume-filler/internal/docx"
	"github.com/jonathan/resume-filler/internal/types"
)

// placeholderPattern matches {{KEY}} tokens. The key charset is deliberately
// conservative: letters, digits, and underscores. Anything else, including
// unbalanced braces, is ordinary text and never replaced. Adjacent tokens
// like {{A}}{{B}} need no special case: matches are non-overlapping and
// leftmost-first.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// hyperlinkKeys maps placeholder keys that become real hyperlinks to their
// display text.
var hyperlinkKeys = map[string]string{
	"GITHUB":   "Github",
	"LINKEDIN": "Linkedin",
}

// Options controls rewrite behavior.
type Options struct {
	// Hyperlinks turns GITHUB and LINKEDIN placeholders into external
	// hyperlink elements instead of plain text. Keys whose value is empty
	// substitute as plain text either way.
	Hyperlinks bool
}

// segment is one content child of a paragraph with its slice of the
// paragraph's logical text. Children that carry no text (bookmarks, proofing
// markers, empty runs) are zero-width segments that pass through untouched.
type segment struct {
	node  *xmlquery.Node
	isRun bool
	text  string
	start int
}

// span is one planned replacement in a paragraph's logical text.
type span struct {
	start, end int
	key, value string
	hyperlink  bool
	url        string
}

// Rewrite replaces every resolvable placeholder in doc with its mapped value.
// Keys absent from m are left in the document verbatim; that is reported, not
// an error. The returned report summarizes what was done.
func Rewrite(doc *docx.Document, m types.PlaceholderMap, opts Options) (*types.FillReport, error) {
	report := &types.FillReport{PerKey: make(map[string]int)}
	unresolved := make(map[string]bool)

	for _, para := range doc.Paragraphs() {
		if err := rewriteParagraph(doc, para, m, opts, report, unresolved); err != nil {
			return nil, err
		}
	}

	report.Unresolved = make([]string, 0, len(unresolved))
	for k := range unresolved {
		report.Unresolved = append(report.Unresolved, k)
	}
	sort.Strings(report.Unresolved)

	return report, nil
}

// Placeholders returns the distinct placeholder keys present in doc, sorted.
func Placeholders(doc *docx.Document) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, para := range doc.Paragraphs() {
		for _, match := range placeholderPattern.FindAllStringSubmatch(para.Text(), -1) {
			if !seen[match[1]] {
				seen[match[1]] = true
				keys = append(keys, match[1])
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func rewriteParagraph(doc *docx.Document, para *docx.Paragraph, m types.PlaceholderMap, opts Options, report *types.FillReport, unresolved map[string]bool) error {
	segs, logical := collectSegments(para)
	if !strings.Contains(logical, "{{") {
		return nil
	}

	spans := planSpans(segs, logical, m, opts, unresolved)
	if len(spans) == 0 {
		return nil
	}

	kids, err := rebuild(doc, segs, logical, spans, report)
	if err != nil {
		return err
	}

	para.ReplaceContent(kids)
	doc.MarkModified()
	return nil
}

func collectSegments(para *docx.Paragraph) ([]segment, string) {
	var segs []segment
	var sb strings.Builder
	for _, child := range para.Children() {
		seg := segment{node: child, start: sb.Len()}
		switch {
		case docx.IsWordElement(child, "r"):
			seg.isRun = true
			seg.text = docx.RunText(child)
		case docx.IsWordElement(child, "hyperlink"):
			seg.text = docx.RunText(child)
		}
		sb.WriteString(seg.text)
		segs = append(segs, seg)
	}
	return segs, sb.String()
}

// planSpans finds all resolvable matches in the logical text. Unknown keys
// are recorded and skipped. Matches that touch an existing hyperlink's
// display text are also skipped: splitting a w:hyperlink would detach its
// text from the relationship it points at.
func planSpans(segs []segment, logical string, m types.PlaceholderMap, opts Options, unresolved map[string]bool) []span {
	var spans []span
	for _, idx := range placeholderPattern.FindAllStringSubmatchIndex(logical, -1) {
		key := logical[idx[2]:idx[3]]
		value, ok := m[key]
		if !ok {
			unresolved[key] = true
			continue
		}
		if overlapsHyperlink(segs, idx[0], idx[1]) {
			unresolved[key] = true
			continue
		}

		s := span{start: idx[0], end: idx[1], key: key, value: value}
		if display, isLink := hyperlinkKeys[key]; isLink && opts.Hyperlinks && value != "" {
			s.hyperlink = true
			s.url = normalizeURL(value)
			s.value = display
		}
		spans = append(spans, s)
	}
	return spans
}

func overlapsHyperlink(segs []segment, start, end int) bool {
	for _, s := range segs {
		if s.isRun || s.text == "" {
			continue
		}
		if start < s.start+len(s.text) && s.start < end {
			return true
		}
	}
	return false
}

// rebuild walks the logical text left to right, emitting untouched segments
// as their original nodes, splitting boundary runs into new runs with copied
// formatting, and materializing one replacement node per span.
func rebuild(doc *docx.Document, segs []segment, logical string, spans []span, report *types.FillReport) ([]*xmlquery.Node, error) {
	var kids []*xmlquery.Node
	si, off := 0, 0

	// flushZero emits zero-width segments sitting at or before the cursor.
	flushZero := func() {
		for si < len(segs) && segs[si].text == "" && segs[si].start <= off {
			kids = append(kids, segs[si].node)
			si++
		}
	}

	// emitTo emits plain content up to logical offset 'to'.
	emitTo := func(to int) {
		for {
			flushZero()
			if off >= to {
				return
			}
			s := segs[si]
			end := s.start + len(s.text)
			take := to
			if end < to {
				take = end
			}
			if off == s.start && take == end {
				// Wholly untouched: keep the original node.
				kids = append(kids, s.node)
			} else {
				// Boundary run split by a replacement.
				kids = append(kids, docx.NewRun(docx.RunProperties(s.node), s.text[off-s.start:take-s.start]))
			}
			off = take
			if off == end {
				si++
			}
		}
	}

	// skipTo advances the cursor through a replaced span. Zero-width
	// segments inside the span (bookmark and proofing markers) are
	// re-emitted after the replacement so markers paired with nodes
	// outside the span stay balanced.
	skipTo := func(to int) {
		for off < to {
			s := segs[si]
			if s.text == "" {
				kids = append(kids, s.node)
				si++
				continue
			}
			end := s.start + len(s.text)
			if end <= to {
				off = end
				si++
			} else {
				off = to
			}
		}
	}

	for _, sp := range spans {
		emitTo(sp.start)
		flushZero()

		// The first run the span overlaps donates its formatting.
		formatting := docx.RunProperties(segs[si].node)

		var replacement *xmlquery.Node
		if sp.hyperlink {
			rID, err := doc.AddHyperlinkRel(sp.url)
			if err != nil {
				return nil, err
			}
			replacement = docx.NewHyperlink(rID, sp.value, formatting)
			report.Hyperlinks++
		} else {
			replacement = docx.NewRun(formatting, sp.value)
		}
		kids = append(kids, replacement)

		skipTo(sp.end)
		report.Replaced++
		report.PerKey[sp.key]++
	}

	emitTo(len(logical))
	flushZero()

	return kids, nil
}

func normalizeURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
