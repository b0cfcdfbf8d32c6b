// internal/metrics/mapping.go
package metrics

import (
	"go.yaml.in/yaml/v3"
)

// Field is one key/value pair of a Mapping.
type Field struct {
	Key   string
	Value any
}

// Mapping is a flat name->value mapping that keeps its insertion order when serialized.
type Mapping []Field

// Get returns the value stored under key.
func (m Mapping) Get(key string) (any, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, f := range m {
		keys[i] = f.Key
	}
	return keys
}

// AsMap copies the mapping into a plain map.
func (m Mapping) AsMap() map[string]any {
	out := make(map[string]any, len(m))
	for _, f := range m {
		out[f.Key] = f.Value
	}
	return out
}

// MarshalYAML emits the fields as a YAML mapping in insertion order.
func (m Mapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range m {
		var value yaml.Node
		if err := value.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode(f.Key), &value)
	}
	return node, nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}
