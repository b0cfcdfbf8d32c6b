// internal/cli/run.go
package tokbench

import (
	"github.com/mwiater/tokbench/internal/benchmark"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runBenchmark = benchmark.RunBenchmark

// runCmd benchmarks every configured model against the configured dataset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark every configured model against the dataset",
	Long: `The 'run' command sends each prompt of the dataset to each configured model, one request at a time,
and writes per-task, per-model and cross-model results. compare_results.yaml and compare_results.md are
rewritten after every model, so an interrupted run still leaves a report of the finished models.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(cmd.Context(), GetConfig())
	},
}

func init() {
	runCmd.Flags().StringSlice("model", nil, "benchmark these models instead of the configured list (repeatable)")
	_ = viper.BindPFlag("models", runCmd.Flags().Lookup("model"))
	rootCmd.AddCommand(runCmd)
}
