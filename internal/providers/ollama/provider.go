// internal/providers/ollama/provider.go
// Package ollama provides a ChatProvider backed by Ollama-compatible HTTP endpoints.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/logging"
	"github.com/mwiater/tokbench/internal/providers"
)

// Provider implements the providers.ChatProvider interface using the Ollama /api/chat endpoint.
type Provider struct {
	client  *http.Client
	timeout time.Duration
}

// New constructs a Provider configured with the application's request timeout.
// A zero timeout leaves requests unbounded.
func New(cfg *appconfig.Config) *Provider {
	timeout := cfg.RequestTimeout()
	return &Provider{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{ForceAttemptHTTP2: false, Proxy: http.ProxyFromEnvironment},
		},
		timeout: timeout,
	}
}

// chatChunk defines a single streamed chunk, or the whole body when streaming is off.
type chatChunk struct {
	Model   string `json:"model"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done               bool   `json:"done"`
	DoneReason         string `json:"done_reason,omitempty"`
	TotalDuration      int64  `json:"total_duration"`
	LoadDuration       int64  `json:"load_duration"`
	PromptEvalCount    int    `json:"prompt_eval_count"`
	PromptEvalDuration int64  `json:"prompt_eval_duration"`
	EvalCount          int    `json:"eval_count"`
	EvalDuration       int64  `json:"eval_duration"`
	Error              string `json:"error,omitempty"`
}

// Stream issues a chat request and forwards output to the provided callbacks.
func (p *Provider) Stream(ctx context.Context, req providers.StreamRequest, callbacks providers.StreamCallbacks) error {
	hostID := hostIdentifier(req.Host)
	messages := req.History
	if len(messages) == 0 {
		messages = []providers.ChatMessage{}
	}

	streamEnabled := !req.DisableStreaming
	payload := map[string]any{
		"model":    req.Model,
		"messages": messages,
		"stream":   streamEnabled,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	logging.LogRequest("TOKBENCH->LLM", hostID, req.Model, body)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Host.URL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		logging.LogRequest("LLM->TOKBENCH", hostID, req.Model, raw)
		return fmt.Errorf("ollama: /api/chat returned %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	if !streamEnabled {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		logging.LogRequest("LLM->TOKBENCH", hostID, req.Model, raw)
		var result chatChunk
		if err := json.Unmarshal(raw, &result); err != nil {
			return err
		}
		if result.Error != "" {
			return fmt.Errorf("ollama: %s", result.Error)
		}
		if callbacks.OnChunk != nil {
			role := result.Message.Role
			if role == "" {
				role = "assistant"
			}
			if err := callbacks.OnChunk(providers.ChatMessage{Role: role, Content: result.Message.Content}); err != nil {
				return err
			}
		}
		return complete(callbacks, req.Model, result)
	}

	decoder := json.NewDecoder(resp.Body)
	var final chatChunk
	for {
		var chunk chatChunk
		if err := decoder.Decode(&chunk); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if data, err := json.Marshal(chunk); err == nil {
			logging.LogRequest("LLM->TOKBENCH", hostID, req.Model, data)
		}
		if chunk.Error != "" {
			return fmt.Errorf("ollama: %s", chunk.Error)
		}

		if callbacks.OnChunk != nil {
			if err := callbacks.OnChunk(providers.ChatMessage{Role: chunk.Message.Role, Content: chunk.Message.Content}); err != nil {
				return err
			}
		}

		if chunk.Done {
			final = chunk
			break
		}
	}

	if !final.Done {
		return fmt.Errorf("ollama: stream for model %s ended before completion", req.Model)
	}
	return complete(callbacks, req.Model, final)
}

// complete converts the final chunk into StreamMetadata and hands it to OnComplete.
func complete(callbacks providers.StreamCallbacks, model string, final chatChunk) error {
	if callbacks.OnComplete == nil {
		return nil
	}
	modelName := final.Model
	if modelName == "" {
		modelName = model
	}
	return callbacks.OnComplete(providers.StreamMetadata{
		Model:              modelName,
		CreatedAt:          time.Now(),
		Done:               final.Done,
		DoneReason:         final.DoneReason,
		TotalDuration:      final.TotalDuration,
		LoadDuration:       final.LoadDuration,
		PromptEvalCount:    final.PromptEvalCount,
		PromptEvalDuration: final.PromptEvalDuration,
		EvalCount:          final.EvalCount,
		EvalDuration:       final.EvalDuration,
	})
}

func hostIdentifier(host appconfig.Host) string {
	if name := strings.TrimSpace(host.Name); name != "" {
		return name
	}
	return host.URL
}

// Close releases any resources held by the provider.
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
