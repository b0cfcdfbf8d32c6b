// internal/report/report.go
// Package report renders aggregated benchmark metrics as a Markdown comparison table.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Column is one metric column of the table.
type Column struct {
	Key   string
	Label string
}

// Columns is the fixed column set, in display order.
var Columns = []Column{
	{Key: "prompt_eval_duration", Label: "Prompt Evaluation Duration"},
	{Key: "prompt_eval_token_per_second", Label: "Prompt Tokens/Second"},
	{Key: "prompt_token_count", Label: "Prompt Token Count"},
	{Key: "response_eval_duration", Label: "Response Evaluation Duration"},
	{Key: "response_eval_token_per_second", Label: "Response Tokens/Second"},
	{Key: "response_token_count", Label: "Response Token Count"},
	{Key: "word_count", Label: "Word Count"},
}

// Entry is one table row: an entity name and its metrics by key.
type Entry struct {
	Name    string
	Metrics map[string]any
}

// Render builds the Markdown table. Rows follow the order of entries; cells are
// looked up through Columns so they always line up with the header. A metric
// missing from an entry renders as an empty cell.
func Render(entries []Entry) string {
	headers := make([]string, 0, len(Columns)+1)
	headers = append(headers, "Model")
	for _, c := range Columns {
		headers = append(headers, c.Label)
	}

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = ":---:"
	}

	lines := []string{row(headers), row(separators)}
	for _, e := range entries {
		cells := make([]string, 0, len(headers))
		cells = append(cells, e.Name)
		for _, c := range Columns {
			v, ok := e.Metrics[c.Key]
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, FormatValue(c.Key, v))
		}
		lines = append(lines, row(cells))
	}
	return strings.Join(lines, "\n")
}

func row(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// FormatValue formats a metric by its key:
// durations as m:ss, rates with one decimal, counts with thousands separators.
// Any value that is not numeric falls back to its plain text form.
func FormatValue(key string, value any) string {
	switch {
	case strings.Contains(key, "eval_duration"):
		f, ok := toFloat(value)
		if !ok {
			return plain(value)
		}
		minutes := math.Floor(f / 60)
		seconds := f - minutes*60
		return fmt.Sprintf("%d:%02d", int64(minutes), int64(seconds))
	case strings.Contains(key, "token_per_second"):
		f, ok := toFloat(value)
		if !ok {
			return plain(value)
		}
		return strconv.FormatFloat(f, 'f', 1, 64)
	case strings.Contains(key, "token_count"), strings.Contains(key, "word_count"):
		f, ok := toFloat(value)
		if !ok || math.Abs(f) >= math.MaxInt64 {
			return plain(value)
		}
		return humanize.Comma(int64(f))
	default:
		return plain(value)
	}
}

// toFloat parses numbers and numeric strings. NaN and infinities are rejected.
func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float64:
		f = v
	case float32:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func plain(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
