// internal/cli/list_tasks.go
package tokbench

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mwiater/tokbench/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	taskNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	taskCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// tasksCmd implements 'list tasks', which shows the tasks of the configured
// dataset in the order they run.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks and prompt counts of the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		ds, err := dataset.LoadFile(cfg.DatasetPath())
		if err != nil {
			return err
		}
		printTasks(cmd.OutOrStdout(), ds)
		return nil
	},
}

func printTasks(w io.Writer, ds dataset.Dataset) {
	fmt.Fprintf(w, "Dataset %s: %s tasks, %s prompts\n", ds.Name,
		humanize.Comma(int64(len(ds.Tasks))), humanize.Comma(int64(ds.PromptCount())))

	width := 0
	for _, task := range ds.Tasks {
		if len(task.Name) > width {
			width = len(task.Name)
		}
	}
	for _, task := range ds.Tasks {
		fmt.Fprintf(w, "  %s  %s\n",
			taskNameStyle.Width(width).Render(task.Name),
			taskCountStyle.Render(humanize.Comma(int64(len(task.Prompts)))+" prompts"))
	}
}

func init() {
	listCmd.AddCommand(tasksCmd)
}
