// internal/cli/root.go
package tokbench

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokbench",
	Short: "tokbench — token throughput benchmarks for Ollama-served models",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range []string{"debug", "metrics", "stream"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		cfg, err := appconfig.FromViper(viper.GetViper())
		if err != nil {
			return err
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(currentConfig.Debug)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config.yaml)")

	rootCmd.PersistentFlags().Bool("debug", false, "log request and response payloads")
	rootCmd.PersistentFlags().Bool("metrics", false, "log wall-clock latency for every request")
	rootCmd.PersistentFlags().Bool("stream", true, "request streamed responses from the model server")
	rootCmd.PersistentFlags().String("host", "", "model server URL (default $OLLAMA_HOST or "+appconfig.DefaultHostURL+")")
	rootCmd.PersistentFlags().String("output-dir", "", "base path of the per-model output directories")
	rootCmd.PersistentFlags().String("results-dir", "", "directory for compare_results.yaml and compare_results.md")
	rootCmd.PersistentFlags().String("dataset", "", "dataset name, read from <dataset-dir>/<name>.yaml")
	rootCmd.PersistentFlags().String("dataset-dir", "", "directory holding dataset files")
	rootCmd.PersistentFlags().Int("timeout", 0, "per-request timeout in seconds (0 = wait indefinitely)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("metrics", rootCmd.PersistentFlags().Lookup("metrics"))
	_ = viper.BindPFlag("stream", rootCmd.PersistentFlags().Lookup("stream"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
	_ = viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("dataset_dir", rootCmd.PersistentFlags().Lookup("dataset-dir"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing
// config file is not an error; defaults, environment and flags still apply.
func ensureConfigLoaded() error {
	appconfig.ApplyDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if appconfig.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
