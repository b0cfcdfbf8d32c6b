// internal/providerfactory/factory_test.go
package providerfactory

import (
	"testing"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/metrics"
	"github.com/mwiater/tokbench/internal/providers/ollama"
)

func TestNewChatProviderNilConfig(t *testing.T) {
	if _, err := NewChatProvider(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNewChatProviderSelectsOllama(t *testing.T) {
	provider, err := NewChatProvider(&appconfig.Config{})
	if err != nil {
		t.Fatalf("NewChatProvider error: %v", err)
	}
	if _, ok := provider.(*ollama.Provider); !ok {
		t.Fatalf("expected *ollama.Provider, got %T", provider)
	}
}

func TestNewChatProviderWrapsMetrics(t *testing.T) {
	provider, err := NewChatProvider(&appconfig.Config{Metrics: true})
	if err != nil {
		t.Fatalf("NewChatProvider error: %v", err)
	}
	if _, ok := provider.(*metrics.Provider); !ok {
		t.Fatalf("expected *metrics.Provider, got %T", provider)
	}
}
