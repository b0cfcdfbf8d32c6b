package tokbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTableCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.yaml")
	out := filepath.Join(dir, "out.md")

	var buf bytes.Buffer
	cmd := TableCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{in, out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected missing input to be reported, not returned: %v", err)
	}

	want := "Error: The file '" + in + "' does not exist."
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestTableCommandConverts(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "compare_results.yaml")
	out := filepath.Join(dir, "compare_results.md")
	content := "m1:\n  prompt_eval_duration: 125\n  response_token_count: 12345\n  response_eval_token_per_second: 3.14159\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := TableCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{in, out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(buf.String(), "Markdown table saved to '"+out+"'") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	md, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(md), "| m1 | 2:05 |") || !strings.Contains(string(md), "12,345") {
		t.Fatalf("unexpected markdown:\n%s", md)
	}
}

func TestTableCommandRequiresTwoArgs(t *testing.T) {
	var buf bytes.Buffer
	cmd := TableCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"only-one.yaml"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestTableSubcommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"table"})
	if err != nil || cmd.Name() != "table" {
		t.Fatalf("expected table subcommand, got %v (%v)", cmd, err)
	}
}
