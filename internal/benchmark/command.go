// internal/benchmark/command.go
package benchmark

import (
	"context"
	"fmt"
	"log"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/dataset"
	"github.com/mwiater/tokbench/internal/providerfactory"
)

var (
	newChatProvider = providerfactory.NewChatProvider
	loadDataset     = dataset.LoadFile
)

// RunBenchmark is the CLI entry point: it loads the configured dataset and
// benchmarks every configured model against it.
func RunBenchmark(ctx context.Context, cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("benchmark: nil config")
	}
	if len(cfg.Models) == 0 {
		return ErrNoModels
	}

	ds, err := loadDataset(cfg.DatasetPath())
	if err != nil {
		return err
	}
	log.Printf("Running benchmark with dataset %s (%d tasks, %d prompts) against %d models",
		ds.Name, len(ds.Tasks), ds.PromptCount(), len(cfg.Models))

	provider, err := newChatProvider(cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	_, err = NewRunner(cfg, provider).RunAll(ctx, cfg.Models, ds)
	return err
}
