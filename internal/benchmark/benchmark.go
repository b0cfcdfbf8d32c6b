// internal/benchmark/benchmark.go
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/dataset"
	"github.com/mwiater/tokbench/internal/logging"
	"github.com/mwiater/tokbench/internal/metrics"
	"github.com/mwiater/tokbench/internal/providers"
	"github.com/mwiater/tokbench/internal/report"
	"github.com/mwiater/tokbench/internal/util"
)

// ErrNoModels is returned when a run is started without any model to benchmark.
var ErrNoModels = errors.New("no models configured")

var (
	modelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	taskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	savedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// Runner drives the model -> task -> prompt loop against a single provider.
// It is not safe for concurrent use; a run owns its output directories.
type Runner struct {
	provider   providers.ChatProvider
	host       appconfig.Host
	outputBase string
	resultsDir string
	stream     bool
	out        io.Writer
}

// NewRunner returns a Runner that sends requests through provider and writes
// results under the directories named in cfg.
func NewRunner(cfg *appconfig.Config, provider providers.ChatProvider) *Runner {
	resultsDir := cfg.ResultsDir
	if strings.TrimSpace(resultsDir) == "" {
		resultsDir = "."
	}
	return &Runner{
		provider:   provider,
		host:       cfg.Host(),
		outputBase: cfg.OutputDir,
		resultsDir: resultsDir,
		stream:     cfg.Stream,
		out:        os.Stdout,
	}
}

// RunOne sends prompt to model as a single user message and measures the reply.
// Provider failures are returned as-is; there is no retry.
func (r *Runner) RunOne(ctx context.Context, model, prompt string) (metrics.Record, error) {
	logging.LogEvent("Running benchmark for model: %s with prompt: %s", model, util.TruncateRunes(util.OneLine(prompt), 120))

	var content strings.Builder
	var meta providers.StreamMetadata
	completed := false

	req := providers.StreamRequest{
		Host:             r.host,
		Model:            model,
		History:          []providers.ChatMessage{{Role: "user", Content: prompt}},
		DisableStreaming: !r.stream,
	}
	callbacks := providers.StreamCallbacks{
		OnChunk: func(chunk providers.ChatMessage) error {
			content.WriteString(chunk.Content)
			return nil
		},
		OnComplete: func(m providers.StreamMetadata) error {
			meta = m
			completed = true
			return nil
		},
	}

	if err := r.provider.Stream(ctx, req, callbacks); err != nil {
		return metrics.Record{}, fmt.Errorf("chat with model %s: %w", model, err)
	}
	if !completed {
		return metrics.Record{}, fmt.Errorf("chat with model %s: response finished without timing metadata", model)
	}

	fmt.Fprintln(r.out, content.String())

	rec, err := metrics.FromResponse(meta, content.String(), prompt)
	if err != nil {
		return metrics.Record{}, err
	}
	logging.LogMetricsEvent("model=%s prompt_tokens=%d prompt_tps=%.1f response_tokens=%d response_tps=%.1f",
		model, rec.PromptTokenCount, rec.PromptEvalTokenPerSecond, rec.ResponseTokenCount, rec.ResponseEvalTokenPerSecond)
	return rec, nil
}

// RunAll benchmarks every model against every task of ds, one request at a time.
// After each model completes, the comparison files are checkpointed, so they
// always reflect every finished model. The first error aborts the run.
func (r *Runner) RunAll(ctx context.Context, models []string, ds dataset.Dataset) (*metrics.Comparison, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}

	comparison := metrics.NewComparison()
	for i, model := range models {
		fmt.Fprintln(r.out, modelStyle.Render(fmt.Sprintf("Model %d of %d: %s", i+1, len(models), model)))

		total, err := r.runModel(ctx, model, ds)
		if err != nil {
			return comparison, err
		}

		comparison.Set(model, total.ToMapping())
		if err := r.Checkpoint(comparison); err != nil {
			return comparison, err
		}
	}
	return comparison, nil
}

// runModel runs every prompt of ds against model and writes the per-model files.
// It returns the model's total across all tasks.
func (r *Runner) runModel(ctx context.Context, model string, ds dataset.Dataset) (metrics.Record, error) {
	dir, err := prepareModelDir(r.outputBase, model)
	if err != nil {
		return metrics.Record{}, err
	}

	total := metrics.Empty()
	last := metrics.Empty()
	for _, task := range ds.Tasks {
		fmt.Fprintln(r.out, taskStyle.Render(fmt.Sprintf("Task %s (%d prompts)", task.Name, len(task.Prompts))))

		taskTotal := metrics.Empty()
		for _, prompt := range task.Prompts {
			rec, err := r.RunOne(ctx, model, prompt)
			if err != nil {
				return metrics.Record{}, err
			}
			total.Combine(rec)
			taskTotal.Combine(rec)
			if err := appendDetail(dir, task.Name, rec); err != nil {
				return metrics.Record{}, err
			}
			*last = rec
		}

		path := filepath.Join(dir, task.Name+taskResultsSuffix)
		if err := writeYAML(path, taskTotal.ToMapping()); err != nil {
			return metrics.Record{}, err
		}
		logging.LogEvent("Results for %s saved to %s", task.Name, path)
	}

	fmt.Fprintln(r.out, "Total results:")
	pp.Fprintln(r.out, total.ToMapping().AsMap())

	// results.yaml holds the last individual sample, not the model total.
	if err := writeYAML(filepath.Join(dir, resultsFile), last.ToMapping()); err != nil {
		return metrics.Record{}, err
	}
	return *total, nil
}

// Checkpoint rewrites the comparison YAML and its Markdown rendering from cmp.
func (r *Runner) Checkpoint(cmp *metrics.Comparison) error {
	if err := os.MkdirAll(r.resultsDir, 0o755); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	if err := writeYAML(filepath.Join(r.resultsDir, CompareResultsFile), cmp); err != nil {
		return err
	}

	mdPath := filepath.Join(r.resultsDir, CompareMarkdownFile)
	if err := util.WriteFile(mdPath, []byte(report.Render(Entries(cmp)))); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}
	fmt.Fprintln(r.out, savedStyle.Render(fmt.Sprintf("Markdown table saved to '%s'", mdPath)))
	return nil
}

// Entries converts a comparison into report rows in model order.
func Entries(cmp *metrics.Comparison) []report.Entry {
	entries := make([]report.Entry, 0, cmp.Len())
	for _, model := range cmp.Models() {
		totals, _ := cmp.Get(model)
		entries = append(entries, report.Entry{Name: model, Metrics: totals.AsMap()})
	}
	return entries
}
