// cmd/benchtable/main.go
// Command benchtable converts a compare-results YAML file into a Markdown table.
//
//	benchtable compare_results.yaml compare_results.md
package main

import (
	"os"

	cli "github.com/mwiater/tokbench/internal/cli"
)

func main() {
	if err := cli.TableCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
