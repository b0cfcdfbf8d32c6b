package tokbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

var (
	configHeaderStyle = lipgloss.NewStyle().Bold(true)
	configKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
)

func runShowConfig(w io.Writer) {
	file := viper.ConfigFileUsed()
	if file == "" {
		fmt.Fprintln(w, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", file)
	}

	cfg := GetConfig()
	fmt.Fprintln(w, configHeaderStyle.Render("Current configuration:"))
	if cfg == nil {
		fmt.Fprintln(w, "  (configuration not loaded)")
		return
	}

	timeout := "none"
	if d := cfg.RequestTimeout(); d > 0 {
		timeout = d.String()
	}
	rows := [][2]string{
		{"Models", strings.Join(cfg.Models, ", ")},
		{"Host", cfg.Host().URL},
		{"Dataset", cfg.DatasetPath()},
		{"Output Dir", cfg.OutputDir},
		{"Results Dir", cfg.ResultsDir},
		{"Timeout", timeout},
		{"Stream", fmt.Sprintf("%v", cfg.Stream)},
		{"Metrics", fmt.Sprintf("%v", cfg.Metrics)},
		{"Debug", fmt.Sprintf("%v", cfg.Debug)},
		{"Log File", cfg.LogFilePath()},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s %s\n", configKeyStyle.Render(row[0]+":"), row[1])
	}
}
