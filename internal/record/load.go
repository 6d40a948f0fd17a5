// Package record provides functionality to load and shape-check resume record files.
package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-filler/internal/types"
)

// sectionKinds maps each known top-level section to the YAML kind it must have.
var sectionKinds = map[string]yaml.Kind{
	"personal_info": yaml.MappingNode,
	"education":     yaml.SequenceNode,
	"experience":    yaml.SequenceNode,
	"skills":        yaml.MappingNode,
	"projects":      yaml.SequenceNode,
}

// Load loads a resume record from a YAML file
func Load(path string) (*types.ResumeRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	return Parse(content)
}

// Parse parses YAML content into a ResumeRecord. The top-level shape is
// checked first: the document must be a mapping, and each known section, when
// present and non-null, must have the expected kind. Extra top-level keys are
// ignored; missing sections decode to zero values.
func Parse(content []byte) (*types.ResumeRecord, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &MalformedRecordError{
			Message: "record is not valid YAML",
			Cause:   err,
		}
	}

	if err := checkShape(&root); err != nil {
		return nil, err
	}

	var rec types.ResumeRecord
	if err := root.Decode(&rec); err != nil {
		return nil, &MalformedRecordError{
			Message: "record fields have unexpected types",
			Cause:   err,
		}
	}

	return &rec, nil
}

// checkShape validates the top-level shape of the parsed document.
func checkShape(root *yaml.Node) error {
	if root.Kind == 0 || len(root.Content) == 0 {
		return &MalformedRecordError{Message: "record is empty"}
	}

	doc := resolveAlias(root.Content[0])
	if doc.Kind != yaml.MappingNode {
		return &MalformedRecordError{
			Message: fmt.Sprintf("record top level must be a mapping, got %s", kindName(doc.Kind)),
		}
	}

	// Mapping content alternates key, value.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		val := resolveAlias(doc.Content[i+1])

		want, known := sectionKinds[key.Value]
		if !known {
			continue
		}
		if val.Tag == "!!null" {
			// Explicitly empty section, treated as absent.
			continue
		}
		if val.Kind != want {
			return &MalformedRecordError{
				Message: fmt.Sprintf("section %q must be a %s, got %s", key.Value, kindName(want), kindName(val.Kind)),
			}
		}
	}

	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
