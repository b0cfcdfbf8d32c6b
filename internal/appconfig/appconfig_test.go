// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad verifies that a valid configuration is loaded with defaults applied,
// and that invalid or missing files result in an error.
func TestLoad(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")

	validConfig := `models:
  - "llama3.2:1b"
  - "qwen/qwen3 4b"
output_dir: results/run
`
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if len(cfg.Models) != 2 || cfg.Models[0] != "llama3.2:1b" || cfg.Models[1] != "qwen/qwen3 4b" {
		t.Fatalf("unexpected models: %v", cfg.Models)
	}
	if cfg.OutputDir != "results/run" {
		t.Fatalf("expected output_dir results/run, got %q", cfg.OutputDir)
	}
	if cfg.HostURL != DefaultHostURL {
		t.Fatalf("expected default host, got %q", cfg.HostURL)
	}
	if cfg.RequestTimeout() != 0 {
		t.Fatalf("expected no request timeout by default, got %v", cfg.RequestTimeout())
	}
	if !cfg.Stream {
		t.Fatal("expected streaming enabled by default")
	}
	if cfg.DatasetPath() != filepath.Join("dataset", "lite.yaml") {
		t.Fatalf("unexpected dataset path %q", cfg.DatasetPath())
	}
	if cfg.LogFilePath() != "tokbench.log" {
		t.Fatalf("unexpected log path %q", cfg.LogFilePath())
	}

	if _, err := Load(writeConfig(t, "models: [a, b\n")); err == nil {
		t.Fatal("Load() with invalid YAML should have failed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestLoadHostFromEnvironment(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "10.0.0.5:11434")

	cfg, err := Load(writeConfig(t, "models: [m1]\ntimeout: 30\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HostURL != "http://10.0.0.5:11434" {
		t.Fatalf("expected env host, got %q", cfg.HostURL)
	}
	if cfg.Host().Name != "10.0.0.5:11434" {
		t.Fatalf("unexpected host name %q", cfg.Host().Name)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.RequestTimeout())
	}
}

func TestDatasetPathOverrides(t *testing.T) {
	cfg := Config{Dataset: "full", DatasetDir: "data"}
	if got := cfg.DatasetPath(); got != filepath.Join("data", "full.yaml") {
		t.Fatalf("DatasetPath() = %q", got)
	}
}
