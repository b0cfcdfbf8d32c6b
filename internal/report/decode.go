// internal/report/decode.go
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mwiater/tokbench/internal/util"
)

// ErrInputNotFound is returned by ConvertFile when the input file does not exist.
var ErrInputNotFound = errors.New("input file does not exist")

// Decode reads a compare-results document (entity -> metric -> value),
// keeping the entities in document order.
func Decode(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of name to metrics", root.Line)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var m map[string]any
		if err := root.Content[i+1].Decode(&m); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Metrics: m})
	}
	return entries, nil
}

// ConvertFile renders the compare-results YAML at in as Markdown and writes it to out.
// It returns ErrInputNotFound without touching out when in does not exist.
func ConvertFile(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		return err
	}

	entries, err := Decode(data)
	if err != nil {
		return fmt.Errorf("parse %q: %w", in, err)
	}

	return util.WriteFile(out, []byte(Render(entries)))
}
