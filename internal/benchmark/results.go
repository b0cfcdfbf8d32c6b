// internal/benchmark/results.go
package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mwiater/tokbench/internal/metrics"
	"github.com/mwiater/tokbench/internal/util"
)

// Output file names.
const (
	detailResultsSuffix = "_detail_results.yaml"
	taskResultsSuffix   = "_results.yaml"
	resultsFile         = "results.yaml"
	CompareResultsFile  = "compare_results.yaml"
	CompareMarkdownFile = "compare_results.md"
)

var modelNameReplacer = strings.NewReplacer("/", "_", " ", "_", ":", "_")

// SanitizeModelName makes a model identifier usable as a directory suffix.
func SanitizeModelName(model string) string {
	return modelNameReplacer.Replace(model)
}

// ModelDir returns the output directory for model under base.
func ModelDir(base, model string) string {
	return base + "-" + SanitizeModelName(model)
}

// prepareModelDir creates the model's output directory, or empties it of the
// files a previous run left behind. Subdirectories are left alone.
func prepareModelDir(base, model string) (string, error) {
	dir := ModelDir(base, model)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return dir, nil
	}
	if err != nil {
		return "", fmt.Errorf("read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return "", fmt.Errorf("clean output directory: %w", err)
		}
	}
	return dir, nil
}

// appendDetail appends one sample, text included, to the task's detail file as
// its own YAML document.
func appendDetail(dir, task string, rec metrics.Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	path := filepath.Join(dir, task+detailResultsSuffix)
	if err := util.AppendFile(path, append([]byte("---\n"), data...)); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// writeYAML replaces the file at path with the YAML encoding of v.
func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
