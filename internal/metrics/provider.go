// internal/metrics/provider.go
package metrics

import (
	"context"
	"time"

	"github.com/mwiater/tokbench/internal/logging"
	"github.com/mwiater/tokbench/internal/providers"
)

// Provider is a decorator that wraps a ChatProvider and logs client-side
// latency next to the server-reported counters of each request.
type Provider struct {
	wrapped providers.ChatProvider
	now     func() time.Time
}

// NewProvider creates a new metrics-enabled provider that wraps an existing ChatProvider.
func NewProvider(wrapped providers.ChatProvider) *Provider {
	logging.LogEvent("[METRICS] Wrapping provider with metrics provider")
	return &Provider{wrapped: wrapped, now: time.Now}
}

// Stream intercepts the call to the wrapped provider's Stream method to record timings.
func (p *Provider) Stream(ctx context.Context, req providers.StreamRequest, callbacks providers.StreamCallbacks) error {
	start := p.now()
	var firstChunk time.Time

	onChunk := func(chunk providers.ChatMessage) error {
		if firstChunk.IsZero() && chunk.Content != "" {
			firstChunk = p.now()
		}
		if callbacks.OnChunk != nil {
			return callbacks.OnChunk(chunk)
		}
		return nil
	}

	onComplete := func(meta providers.StreamMetadata) error {
		ttft := int64(0)
		if !firstChunk.IsZero() {
			ttft = firstChunk.Sub(start).Milliseconds()
		}
		logging.LogMetricsEvent("model=%s ttft_ms=%d wall_ms=%d load_ms=%d prompt_eval_count=%d eval_count=%d",
			meta.Model, ttft, p.now().Sub(start).Milliseconds(), meta.LoadDuration/nanosPerMilli,
			meta.PromptEvalCount, meta.EvalCount)

		if callbacks.OnComplete != nil {
			return callbacks.OnComplete(meta)
		}
		return nil
	}

	return p.wrapped.Stream(ctx, req, providers.StreamCallbacks{
		OnChunk:    onChunk,
		OnComplete: onComplete,
	})
}

// Close passes the call through to the wrapped provider.
func (p *Provider) Close() error {
	return p.wrapped.Close()
}
