// internal/providers/provider.go

// Package providers defines the interface the benchmark uses to talk to a model server.
// It keeps the runner independent of the wire protocol of any concrete server.
package providers

import (
	"context"
	"time"

	"github.com/mwiater/tokbench/internal/appconfig"
)

// ChatMessage represents a single message in a chat conversation.
// It contains the role of the message sender (e.g., "user", "assistant") and the message content.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamMetadata contains the server-reported counters of a completed chat request.
// Durations are in nanoseconds, as reported by Ollama.
type StreamMetadata struct {
	Model              string
	CreatedAt          time.Time
	Done               bool
	DoneReason         string
	TotalDuration      int64
	LoadDuration       int64
	PromptEvalCount    int
	PromptEvalDuration int64
	EvalCount          int
	EvalDuration       int64
}

// StreamRequest encapsulates all the information needed to initiate a chat request.
type StreamRequest struct {
	Host             appconfig.Host
	Model            string
	History          []ChatMessage
	DisableStreaming bool
}

// StreamCallbacks defines the callback functions that are invoked during a chat stream.
// OnChunk is called for each message chunk received, and OnComplete is called when the stream is finished.
type StreamCallbacks struct {
	OnChunk    func(ChatMessage) error
	OnComplete func(StreamMetadata) error
}

// ChatProvider is the interface that all model providers must implement.
type ChatProvider interface {
	// Stream sends the request and forwards the reply to the callbacks.
	Stream(ctx context.Context, req StreamRequest, callbacks StreamCallbacks) error
	// Close cleans up any resources used by the provider.
	Close() error
}
