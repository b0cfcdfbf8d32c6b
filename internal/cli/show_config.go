// internal/cli/show_config.go
package tokbench

import (
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration after flags and environment are applied.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the YAML config is loaded properly and overridden by flags and OLLAMA_HOST accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
