// internal/providerfactory/factory.go
package providerfactory

import (
	"fmt"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/logging"
	"github.com/mwiater/tokbench/internal/metrics"
	"github.com/mwiater/tokbench/internal/providers"
	"github.com/mwiater/tokbench/internal/providers/ollama"
)

// NewChatProvider builds the Ollama provider for cfg and, when metrics are
// enabled, wraps it with the latency-logging decorator.
func NewChatProvider(cfg *appconfig.Config) (providers.ChatProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided to provider factory")
	}

	var provider providers.ChatProvider = ollama.New(cfg)
	logging.LogEvent("Ollama provider ready: %s", cfg.Host().URL)

	if cfg.Metrics {
		provider = metrics.NewProvider(provider)
	}
	return provider, nil
}
