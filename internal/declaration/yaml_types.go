package declaration

import (
	"gopkg.in/yaml.v3"
)

const (
	nullTag = "!!null"
	strTag  = "!!str"
)

// UnmarshalYAML implements custom YAML unmarshaling for Value.
// Accepts a scalar of any type or a sequence of scalars; anything else is
// recorded as KindOther so the parser can report it with context.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	*v = Value{Line: node.Line}

	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case nullTag:
			v.Kind = KindAbsent
			v.Line = 0
		case strTag:
			v.Kind = KindString
			v.Text = node.Value
		default:
			v.Kind = KindScalar
			v.Text = node.Value
		}

		return nil

	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				v.Kind = KindOther
				return nil
			}

			items = append(items, item.Value)
		}

		v.Kind = KindList
		v.List = items

		return nil

	default:
		v.Kind = KindOther
		return nil
	}
}
