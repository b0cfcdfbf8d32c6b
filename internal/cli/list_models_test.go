package tokbench

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListModelsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:1b"}]}`))
	}))
	defer server.Close()

	t.Setenv("OLLAMA_HOST", "")
	useConfig(t, "models: [llama3.2:1b, absent:7b]\nhost: "+server.URL+"\n")

	out, err := execute(t, "list", "models")
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	for _, want := range []string{"llama3.2:1b  installed", "absent:7b  missing"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
