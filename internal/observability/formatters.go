// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-filler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 15
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		line = truncateRunes(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlaceholderMap outputs the resolved placeholder map, keys sorted.
func (p *Printer) PrintPlaceholderMap(m types.PlaceholderMap) {
	if len(m) == 0 {
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resolved %d placeholders:\n\n", len(m)))

	count := min(len(keys), maxItemsToShow)
	for i := 0; i < count; i++ {
		value := m[keys[i]]
		// Multi-line values show only their first line
		if nl := strings.IndexByte(value, '\n'); nl >= 0 {
			value = value[:nl] + " ..."
		}
		value = truncateRunes(value, 30)
		sb.WriteString(fmt.Sprintf("%-24s %s\n", keys[i], value))
	}
	if len(keys) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keys", len(keys)-maxItemsToShow))
	}

	p.printBox("PLACEHOLDER MAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFillReport outputs a summary of the substitutions performed.
func (p *Printer) PrintFillReport(report *types.FillReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Replaced:   %d\n", report.Replaced))
	sb.WriteString(fmt.Sprintf("Hyperlinks: %d\n", report.Hyperlinks))

	if len(report.PerKey) > 0 {
		keys := make([]string, 0, len(report.PerKey))
		for k := range report.PerKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nPer key:\n")
		count := min(len(keys), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %-22s ×%d\n", keys[i], report.PerKey[keys[i]]))
		}
		if len(keys) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more keys\n", len(keys)-maxItemsToShow))
		}
	}

	if len(report.Unresolved) > 0 {
		sb.WriteString("\nLeft in document:\n")
		for _, k := range report.Unresolved {
			sb.WriteString(fmt.Sprintf("  ⚠ {{%s}}\n", k))
		}
	}

	p.printBox("FILL REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// truncateRunes shortens s to at most max runes, ellipsis included.
// Truncation happens on rune boundaries so multibyte values never end
// up split mid-sequence.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
