// internal/models/models.go
// Package models queries an Ollama host for the models it has installed.
package models

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/tokbench/internal/appconfig"
)

const listTimeout = 10 * time.Second

// OllamaHost lists models on one Ollama server.
type OllamaHost struct {
	Name   string
	URL    string
	client *http.Client
}

// Status pairs a configured model with whether the host has it installed.
type Status struct {
	Model     string
	Installed bool
}

// NewOllamaHost returns a host for the server named in cfg.
func NewOllamaHost(cfg *appconfig.Config) *OllamaHost {
	host := cfg.Host()
	return &OllamaHost{Name: host.Name, URL: host.URL, client: http.DefaultClient}
}

// ListRawModels returns the models available on the host, in server order.
func (h *OllamaHost) ListRawModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not list models: Ollama is not accessible on %s", h.Name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("could not list models: %s", strings.TrimSpace(string(bodyBytes)))
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("error parsing models from %s: %v", h.Name, err)
	}

	models := make([]string, 0, len(tagsResp.Models))
	for _, model := range tagsResp.Models {
		models = append(models, model.Name)
	}
	return models, nil
}

// CheckConfigured reports, for each configured model in order, whether the host has it.
// A name without a tag matches the host's ":latest" entry, as Ollama resolves it.
func (h *OllamaHost) CheckConfigured(ctx context.Context, configured []string) ([]Status, error) {
	installed, err := h.ListRawModels(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(installed))
	for _, name := range installed {
		have[name] = true
	}

	statuses := make([]Status, 0, len(configured))
	for _, model := range configured {
		ok := have[model]
		if !ok && !strings.Contains(model, ":") {
			ok = have[model+":latest"]
		}
		statuses = append(statuses, Status{Model: model, Installed: ok})
	}
	return statuses, nil
}
