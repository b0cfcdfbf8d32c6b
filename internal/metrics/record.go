// internal/metrics/record.go
// Package metrics holds the per-sample measurement record and the accumulators built from it.
package metrics

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mwiater/tokbench/internal/providers"
)

// Metric keys in the order they are exported by ToMapping.
const (
	KeyPromptTokenCount           = "prompt_token_count"
	KeyPromptEvalDuration         = "prompt_eval_duration"
	KeyResponseTokenCount         = "response_token_count"
	KeyResponseEvalDuration       = "response_eval_duration"
	KeyPromptEvalTokenPerSecond   = "prompt_eval_token_per_second"
	KeyResponseEvalTokenPerSecond = "response_eval_token_per_second"
	KeyWordCount                  = "word_count"
)

const nanosPerMilli = 1_000_000

// ErrDegenerateTiming is returned when a response reports a zero evaluation
// duration, which leaves its tokens/second undefined.
var ErrDegenerateTiming = errors.New("degenerate timing sample")

// Record is one sample's measured quantities, or a running total of many samples.
// Durations are in milliseconds. Prompt and Response are only set on single samples.
type Record struct {
	PromptTokenCount           int     `yaml:"prompt_token_count"`
	PromptEvalDuration         float64 `yaml:"prompt_eval_duration"`
	ResponseTokenCount         int     `yaml:"response_token_count"`
	ResponseEvalDuration       float64 `yaml:"response_eval_duration"`
	PromptEvalTokenPerSecond   float64 `yaml:"prompt_eval_token_per_second"`
	ResponseEvalTokenPerSecond float64 `yaml:"response_eval_token_per_second"`
	WordCount                  int     `yaml:"word_count"`
	Prompt                     string  `yaml:"prompt,omitempty"`
	Response                   string  `yaml:"response,omitempty"`
}

// Empty returns the all-zero record, the identity for Combine.
func Empty() *Record {
	return &Record{}
}

// FromResponse builds a single-sample record from a completed chat response.
// WordCount is the character count of the generated text.
func FromResponse(meta providers.StreamMetadata, content, prompt string) (Record, error) {
	if meta.PromptEvalDuration <= 0 || meta.EvalDuration <= 0 {
		return Record{}, fmt.Errorf("%w: model %s reported prompt_eval_duration=%dns eval_duration=%dns",
			ErrDegenerateTiming, meta.Model, meta.PromptEvalDuration, meta.EvalDuration)
	}

	r := Record{
		PromptTokenCount:     meta.PromptEvalCount,
		PromptEvalDuration:   float64(meta.PromptEvalDuration) / nanosPerMilli,
		ResponseTokenCount:   meta.EvalCount,
		ResponseEvalDuration: float64(meta.EvalDuration) / nanosPerMilli,
		WordCount:            utf8.RuneCountInString(content),
		Prompt:               prompt,
		Response:             content,
	}
	r.recomputeRates()
	return r, nil
}

// Combine adds other into r and recomputes the rates from the new totals.
// The result is an aggregate, so the sample text is dropped. It returns r so
// calls can be chained while folding.
func (r *Record) Combine(other Record) *Record {
	r.PromptTokenCount += other.PromptTokenCount
	r.PromptEvalDuration += other.PromptEvalDuration
	r.ResponseTokenCount += other.ResponseTokenCount
	r.ResponseEvalDuration += other.ResponseEvalDuration
	r.WordCount += other.WordCount
	r.Prompt = ""
	r.Response = ""
	r.recomputeRates()
	return r
}

// Fold combines records left to right into a fresh accumulator.
func Fold(records ...Record) Record {
	total := Empty()
	for _, rec := range records {
		total.Combine(rec)
	}
	return *total
}

// recomputeRates derives both tokens/second fields from the count and duration totals.
func (r *Record) recomputeRates() {
	r.PromptEvalTokenPerSecond = perSecond(r.PromptTokenCount, r.PromptEvalDuration)
	r.ResponseEvalTokenPerSecond = perSecond(r.ResponseTokenCount, r.ResponseEvalDuration)
}

// perSecond returns count per wall-clock second for a duration in milliseconds.
// A zero duration only occurs on identity records and yields 0.
func perSecond(count int, millis float64) float64 {
	if millis == 0 {
		return 0
	}
	return float64(count) / (millis / 1000)
}

// ToMapping exports the numeric fields in their fixed order, without the sample text.
func (r Record) ToMapping() Mapping {
	return Mapping{
		{Key: KeyPromptTokenCount, Value: r.PromptTokenCount},
		{Key: KeyPromptEvalDuration, Value: r.PromptEvalDuration},
		{Key: KeyResponseTokenCount, Value: r.ResponseTokenCount},
		{Key: KeyResponseEvalDuration, Value: r.ResponseEvalDuration},
		{Key: KeyPromptEvalTokenPerSecond, Value: r.PromptEvalTokenPerSecond},
		{Key: KeyResponseEvalTokenPerSecond, Value: r.ResponseEvalTokenPerSecond},
		{Key: KeyWordCount, Value: r.WordCount},
	}
}
