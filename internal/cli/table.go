// internal/cli/table.go
package tokbench

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/tokbench/internal/report"
	"github.com/spf13/cobra"
)

var (
	failedResult     = color.New(color.FgRed).SprintfFunc()
	successfulResult = color.New(color.FgGreen).SprintfFunc()
)

// tableCmd implements 'table', the in-tree form of the benchtable tool.
var tableCmd = newTableCmd("table")

func init() {
	rootCmd.AddCommand(tableCmd)
}

// TableCommand returns a standalone conversion command named benchtable.
// It carries no config or logging setup.
func TableCommand() *cobra.Command {
	return newTableCmd("benchtable")
}

func newTableCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <input.yaml> <output.md>",
		Short: "Convert a compare-results YAML file into a Markdown table",
		Long: `Reads a YAML mapping of model name to metrics, as written to compare_results.yaml by 'run',
and writes it as a Markdown table. A missing input file is reported and nothing is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runTable(w io.Writer, in, out string) error {
	err := report.ConvertFile(in, out)
	if errors.Is(err, report.ErrInputNotFound) {
		fmt.Fprintln(w, failedResult("Error: The file '%s' does not exist.", in))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, successfulResult("Markdown table saved to '%s'", out))
	return nil
}
