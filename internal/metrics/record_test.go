package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/tokbench/internal/providers"
)

func sample(t *testing.T, promptCount int, promptNanos int64, evalCount int, evalNanos int64, content string) Record {
	t.Helper()
	rec, err := FromResponse(providers.StreamMetadata{
		Model:              "m",
		PromptEvalCount:    promptCount,
		PromptEvalDuration: promptNanos,
		EvalCount:          evalCount,
		EvalDuration:       evalNanos,
	}, content, "prompt")
	require.NoError(t, err)
	return rec
}

func TestEmptyIsZero(t *testing.T) {
	assert.Equal(t, Record{}, *Empty())
}

func TestFromResponseConvertsUnits(t *testing.T) {
	rec := sample(t, 20, 500_000_000, 100, 4_000_000_000, "héllo")

	assert.Equal(t, 20, rec.PromptTokenCount)
	assert.InDelta(t, 500.0, rec.PromptEvalDuration, 1e-9)
	assert.Equal(t, 100, rec.ResponseTokenCount)
	assert.InDelta(t, 4000.0, rec.ResponseEvalDuration, 1e-9)
	assert.InDelta(t, 40.0, rec.PromptEvalTokenPerSecond, 1e-9)
	assert.InDelta(t, 25.0, rec.ResponseEvalTokenPerSecond, 1e-9)
	assert.Equal(t, 5, rec.WordCount, "word count is the character length of the reply")
	assert.Equal(t, "prompt", rec.Prompt)
	assert.Equal(t, "héllo", rec.Response)
}

func TestFromResponseZeroDuration(t *testing.T) {
	_, err := FromResponse(providers.StreamMetadata{PromptEvalCount: 3, EvalCount: 4, EvalDuration: 10}, "x", "p")
	require.ErrorIs(t, err, ErrDegenerateTiming)

	_, err = FromResponse(providers.StreamMetadata{PromptEvalCount: 3, PromptEvalDuration: 10, EvalCount: 4}, "x", "p")
	require.ErrorIs(t, err, ErrDegenerateTiming)
}

func TestCombineRecomputesRatesFromTotals(t *testing.T) {
	a := sample(t, 10, 1_000_000_000, 50, 1_000_000_000, "aaaa")
	b := sample(t, 30, 500_000_000, 10, 3_000_000_000, "bb")
	c := sample(t, 5, 250_000_000, 40, 1_000_000_000, "c")

	total := Fold(a, b, c)

	assert.Equal(t, 45, total.PromptTokenCount)
	assert.InDelta(t, 1750.0, total.PromptEvalDuration, 1e-9)
	assert.Equal(t, 100, total.ResponseTokenCount)
	assert.InDelta(t, 5000.0, total.ResponseEvalDuration, 1e-9)
	assert.Equal(t, 7, total.WordCount)

	assert.InDelta(t, 45/1.75, total.PromptEvalTokenPerSecond, 1e-9)
	assert.InDelta(t, 20.0, total.ResponseEvalTokenPerSecond, 1e-9)

	meanOfRates := (a.ResponseEvalTokenPerSecond + b.ResponseEvalTokenPerSecond + c.ResponseEvalTokenPerSecond) / 3
	assert.NotEqual(t, meanOfRates, total.ResponseEvalTokenPerSecond)

	assert.Empty(t, total.Prompt)
	assert.Empty(t, total.Response)
}

func TestCombineIsOrderIndependent(t *testing.T) {
	a := sample(t, 7, 123_000_000, 19, 777_000_000, "one")
	b := sample(t, 11, 456_000_000, 23, 888_000_000, "two two")
	c := sample(t, 13, 789_000_000, 29, 999_000_000, "three")

	left := Empty().Combine(a).Combine(b).Combine(c)
	right := Empty().Combine(c).Combine(a).Combine(b)
	grouped := Empty().Combine(a)
	bc := Empty().Combine(b).Combine(c)
	grouped.Combine(*bc)

	for _, other := range []*Record{right, grouped} {
		assert.Equal(t, left.PromptTokenCount, other.PromptTokenCount)
		assert.Equal(t, left.ResponseTokenCount, other.ResponseTokenCount)
		assert.Equal(t, left.WordCount, other.WordCount)
		assert.InDelta(t, left.PromptEvalDuration, other.PromptEvalDuration, 1e-9)
		assert.InDelta(t, left.ResponseEvalDuration, other.ResponseEvalDuration, 1e-9)
		assert.InDelta(t, left.PromptEvalTokenPerSecond, other.PromptEvalTokenPerSecond, 1e-9)
		assert.InDelta(t, left.ResponseEvalTokenPerSecond, other.ResponseEvalTokenPerSecond, 1e-9)
	}
}

func TestCombineReturnsReceiver(t *testing.T) {
	acc := Empty()
	assert.Same(t, acc, acc.Combine(Record{}))
	assert.Equal(t, Record{}, *acc, "identity combined with identity stays zero")
}

func TestToMappingOrder(t *testing.T) {
	rec := sample(t, 1, 1_000_000, 2, 2_000_000, "xy")
	m := rec.ToMapping()

	assert.Equal(t, []string{
		"prompt_token_count",
		"prompt_eval_duration",
		"response_token_count",
		"response_eval_duration",
		"prompt_eval_token_per_second",
		"response_eval_token_per_second",
		"word_count",
	}, m.Keys())

	_, hasPrompt := m.Get("prompt")
	assert.False(t, hasPrompt)
	v, ok := m.Get(KeyWordCount)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
