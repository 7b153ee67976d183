package squadeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Cat.", "cat"},
		{"a  dog", "dog"},
		{"An Apple, a Day", "apple day"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeAnswer(tt.in); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExactMatchAfterNormalization(t *testing.T) {
	preds := []Record{{Query: 0, Answers: []string{"The Cat."}}}
	refs := []Record{{Query: 0, Answers: []string{"cat"}}}

	metrics := EvalLists(preds, refs)
	assert.InDelta(t, 100.0, metrics["exact_match"], 1e-9)
	assert.InDelta(t, 100.0, metrics["f1"], 1e-9)
}

func TestF1PartialOverlap(t *testing.T) {
	preds := []Record{{Query: 0, Answers: []string{"new york city"}}}
	refs := []Record{{Query: 0, Answers: []string{"new york"}}}

	metrics := EvalLists(preds, refs)
	assert.InDelta(t, 0.0, metrics["exact_match"], 1e-9)
	// precision 2/3, recall 2/2 -> f1 = 0.8
	assert.InDelta(t, 80.0, metrics["f1"], 1e-9)
}

func TestBestOverMultipleReferences(t *testing.T) {
	preds := []Record{{Query: 0, Answers: []string{"blue"}}}
	refs := []Record{{Query: 0, Answers: []string{"red", "blue", "green"}}}

	metrics := EvalLists(preds, refs)
	assert.InDelta(t, 100.0, metrics["exact_match"], 1e-9)
}

func TestEmptyPredictionScoresZero(t *testing.T) {
	preds := []Record{{Query: 0, Answers: []string{""}}}
	refs := []Record{{Query: 0, Answers: []string{"something"}}}

	metrics := EvalLists(preds, refs)
	assert.InDelta(t, 0.0, metrics["exact_match"], 1e-9)
	assert.InDelta(t, 0.0, metrics["f1"], 1e-9)
}

func TestAveragedOverPredictions(t *testing.T) {
	preds := []Record{
		{Query: 0, Answers: []string{"right"}},
		{Query: 1, Answers: []string{"wrong"}},
	}
	refs := []Record{
		{Query: 0, Answers: []string{"right"}},
		{Query: 1, Answers: []string{"correct"}},
	}

	metrics := EvalLists(preds, refs)
	assert.InDelta(t, 50.0, metrics["exact_match"], 1e-9)
}
