// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config.yaml"
	// DefaultHostURL is the Ollama endpoint used when neither the config nor OLLAMA_HOST set one.
	DefaultHostURL = "http://localhost:11434"
	// defaultDataset is the dataset name looked up under the dataset directory.
	defaultDataset = "lite"
	// defaultDatasetDir is the directory datasets are read from.
	defaultDatasetDir = "dataset"
	// defaultOutputDir is the base path of the per-model output directories.
	defaultOutputDir = "output"
	// defaultLogFile is the log file written next to the working directory.
	defaultLogFile = "tokbench.log"
)

// Config represents the top-level application configuration.
type Config struct {
	Models         []string `mapstructure:"models"`
	OutputDir      string   `mapstructure:"output_dir"`
	HostURL        string   `mapstructure:"host"`
	Dataset        string   `mapstructure:"dataset"`
	DatasetDir     string   `mapstructure:"dataset_dir"`
	ResultsDir     string   `mapstructure:"results_dir"`
	TimeoutSeconds int      `mapstructure:"timeout"`
	Stream         bool     `mapstructure:"stream"`
	Metrics        bool     `mapstructure:"metrics"`
	Debug          bool     `mapstructure:"debug"`
	LogFile        string   `mapstructure:"logFile"`
	ConfigPath     string   `mapstructure:"-"`
}

// Host represents the model server a benchmark talks to.
type Host struct {
	Name string
	URL  string
}

// ApplyDefaults registers default values and environment bindings on v.
// The root command calls it on the global viper instance; Load calls it on a private one.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", defaultOutputDir)
	v.SetDefault("host", DefaultHostURL)
	v.SetDefault("dataset", defaultDataset)
	v.SetDefault("dataset_dir", defaultDatasetDir)
	v.SetDefault("results_dir", ".")
	v.SetDefault("timeout", 0)
	v.SetDefault("stream", true)
	v.SetDefault("metrics", false)
	v.SetDefault("debug", false)
	v.SetDefault("logFile", defaultLogFile)
	_ = v.BindEnv("host", "OLLAMA_HOST")
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	v := viper.New()
	ApplyDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if IsNotFound(err) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	cfg, err := FromViper(v)
	if err != nil {
		return Config{}, err
	}
	cfg.ConfigPath = path
	return cfg, nil
}

// FromViper materializes the merged viper state (flags > env > file > defaults) into a Config.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.HostURL = normalizeHostURL(cfg.HostURL)
	return cfg, nil
}

// IsNotFound reports whether err means the config file does not exist.
// viper returns ConfigFileNotFoundError only when searching config paths;
// an explicit SetConfigFile surfaces the underlying fs error instead.
func IsNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

// RequestTimeout returns the HTTP timeout for model requests. Zero means the
// request blocks until the server answers.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// DatasetPath returns the location of the configured dataset file.
func (c Config) DatasetPath() string {
	dir := c.DatasetDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultDatasetDir
	}
	name := c.Dataset
	if strings.TrimSpace(name) == "" {
		name = defaultDataset
	}
	return filepath.Join(dir, name+".yaml")
}

// Host returns the configured model server.
func (c Config) Host() Host {
	url := normalizeHostURL(c.HostURL)
	return Host{Name: strings.TrimPrefix(strings.TrimPrefix(url, "http://"), "https://"), URL: url}
}

// normalizeHostURL accepts OLLAMA_HOST-style values such as "127.0.0.1:11434".
func normalizeHostURL(raw string) string {
	url := strings.TrimRight(strings.TrimSpace(raw), "/")
	if url == "" {
		return DefaultHostURL
	}
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return url
}
