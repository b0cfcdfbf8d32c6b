// internal/dataset/dataset.go
// Package dataset loads the prompts a benchmark issues, grouped by named task.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrNotFound is returned when the dataset file does not exist.
var ErrNotFound = errors.New("dataset not found")

// Task is a named, ordered list of prompts.
type Task struct {
	Name    string
	Prompts []string
}

// Dataset is the set of tasks read from one dataset file, in file order.
type Dataset struct {
	Name  string
	Tasks []Task
}

// PromptCount returns the number of prompts across all tasks.
func (d Dataset) PromptCount() int {
	n := 0
	for _, t := range d.Tasks {
		n += len(t.Prompts)
	}
	return n
}

// Load reads dir/name.yaml.
func Load(dir, name string) (Dataset, error) {
	return LoadFile(filepath.Join(dir, name+".yaml"))
}

// LoadFile reads a dataset from path. The dataset name is the file's base name
// without extension.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Dataset{}, fmt.Errorf("read dataset %q: %w", path, err)
	}

	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %q: %w", path, err)
	}
	ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ds, nil
}

// Parse decodes a dataset document. A missing or empty "tasks" key yields a
// dataset with no tasks.
func Parse(data []byte) (Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Dataset{}, err
	}
	if len(doc.Content) == 0 {
		return Dataset{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Dataset{}, fmt.Errorf("expected a mapping at the top level, got %s", kindName(root.Kind))
	}

	tasksNode := lookup(root, "tasks")
	if tasksNode == nil || tasksNode.Tag == "!!null" {
		return Dataset{}, nil
	}
	if tasksNode.Kind != yaml.MappingNode {
		return Dataset{}, fmt.Errorf("line %d: tasks must be a mapping of task name to prompts", tasksNode.Line)
	}

	var ds Dataset
	for i := 0; i+1 < len(tasksNode.Content); i += 2 {
		name := tasksNode.Content[i].Value
		var prompts []string
		if err := tasksNode.Content[i+1].Decode(&prompts); err != nil {
			return Dataset{}, fmt.Errorf("task %q: %w", name, err)
		}
		ds.Tasks = append(ds.Tasks, Task{Name: name, Prompts: prompts})
	}
	return ds, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
