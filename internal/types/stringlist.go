//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList is a list of strings that also accepts a single scalar in YAML.
// Resume files in the wild use both forms for courses, achievements, and
// project descriptions.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*s = nil
			return nil
		}
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = StringList(items)
		return nil
	case yaml.AliasNode:
		return s.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("expected a string or a sequence of strings at line %d", value.Line)
	}
}
