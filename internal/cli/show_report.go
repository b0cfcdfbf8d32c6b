// internal/cli/show_report.go
package tokbench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/mwiater/tokbench/internal/benchmark"
	"github.com/mwiater/tokbench/internal/report"
	"github.com/spf13/cobra"
)

var reportWordWrap = 120

// showReportCmd implements 'show report', which renders a compare-results
// file as a styled table in the terminal.
var showReportCmd = &cobra.Command{
	Use:   "report [compare_results.yaml]",
	Short: "Render a compare-results file in the terminal",
	Long:  `Render a compare-results YAML file (by default the one in the configured results directory) as a formatted Markdown table.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultComparePath()
		if len(args) == 1 {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}
		entries, err := report.Decode(data)
		if err != nil {
			return fmt.Errorf("parse %q: %w", path, err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(reportWordWrap),
		)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		out, err := renderer.Render(report.Render(entries) + "\n")
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func defaultComparePath() string {
	dir := "."
	if cfg := GetConfig(); cfg != nil && cfg.ResultsDir != "" {
		dir = cfg.ResultsDir
	}
	return filepath.Join(dir, benchmark.CompareResultsFile)
}

func init() {
	showCmd.AddCommand(showReportCmd)
}
