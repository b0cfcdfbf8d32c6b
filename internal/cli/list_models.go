// internal/cli/list_models.go
package tokbench

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/tokbench/internal/models"
	"github.com/spf13/cobra"
)

var (
	installedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// modelsCmd implements 'list models', which checks the configured models
// against the ones installed on the host before a run.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show which configured models are installed on the host",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		host := models.NewOllamaHost(cfg)
		statuses, err := host.CheckConfigured(cmd.Context(), cfg.Models)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Host %s:\n", host.Name)
		for _, s := range statuses {
			mark := installedStyle.Render("installed")
			if !s.Installed {
				mark = missingStyle.Render("missing")
			}
			fmt.Fprintf(out, "  %s  %s\n", s.Model, mark)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(modelsCmd)
}
