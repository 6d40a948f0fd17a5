//nolint:revive // types is a standard Go package name pattern
package types

// PlaceholderMap is a flat mapping from placeholder key (without braces,
// case-sensitive) to replacement value. It is built fresh per run and never
// persisted.
type PlaceholderMap map[string]string

// FillReport summarizes what a document rewrite did. Unresolved keys are
// informational only: a placeholder with no mapped value stays in the
// document verbatim.
type FillReport struct {
	Replaced   int            // total placeholder occurrences replaced
	Hyperlinks int            // replacements materialized as hyperlinks
	PerKey     map[string]int // replacement count per placeholder key
	Unresolved []string       // distinct keys seen in the template but absent from the map
}
