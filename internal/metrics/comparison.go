// internal/metrics/comparison.go
package metrics

import (
	"go.yaml.in/yaml/v3"
)

// Comparison accumulates per-model totals across a run, keyed by model name.
// Models keep the position of their first insertion.
type Comparison struct {
	order  []string
	totals map[string]Mapping
}

// NewComparison returns an empty Comparison.
func NewComparison() *Comparison {
	return &Comparison{totals: make(map[string]Mapping)}
}

// Set stores the totals for model, replacing any earlier value.
func (c *Comparison) Set(model string, totals Mapping) {
	if _, exists := c.totals[model]; !exists {
		c.order = append(c.order, model)
	}
	c.totals[model] = totals
}

// Get returns the totals stored for model.
func (c *Comparison) Get(model string) (Mapping, bool) {
	m, ok := c.totals[model]
	return m, ok
}

// Models returns the model names in insertion order.
func (c *Comparison) Models() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of models recorded.
func (c *Comparison) Len() int {
	return len(c.order)
}

// MarshalYAML emits model -> totals in insertion order.
func (c *Comparison) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, model := range c.order {
		value, err := c.totals[model].MarshalYAML()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode(model), value.(*yaml.Node))
	}
	return node, nil
}
