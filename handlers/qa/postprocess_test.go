package qa

import (
	"testing"

	internalErr "github.com/Meesho/BharatMLStack/qaflow/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestProcessBatchSpanSelection(t *testing.T) {
	p := NewPostProcessor(MetricSquad)
	instances := []InferInstance{
		{Tokens: []string{"the", "answer", "span"}, Question: "q?", Answers: []string{"answer span"}},
	}
	out := BatchOutput{
		Lens:  []float64{3},
		Probs: []float64{0.1, 0.7, 0.2, 0.05, 0.1, 0.85},
	}

	refs, preds, stored, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)
	assert.Len(t, preds, 1)
	// start=1, end restricted to [1:] -> 1+argmax([0.1,0.85]) = 2, tokens[1:3]
	assert.Equal(t, []string{"answer span"}, preds[0].Answers)
	assert.Equal(t, []string{"answer span"}, refs[0].Answers)
	assert.Equal(t, []string{"answer span"}, stored[0].AnswerPred)
	assert.Equal(t, 0, preds[0].Query)
}

func TestProcessBatchStartAtLastPosition(t *testing.T) {
	p := NewPostProcessor(MetricSquad)
	instances := []InferInstance{
		{Tokens: []string{"a", "b", "c"}, Question: "q?", Answers: []string{"c"}},
	}
	// start lands on the last position: the end search is skipped and the
	// span degenerates to that single position.
	out := BatchOutput{
		Lens:  []float64{3},
		Probs: []float64{0.1, 0.2, 0.7, 0.8, 0.1, 0.1},
	}

	_, preds, _, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)
	assert.Equal(t, []string{"c"}, preds[0].Answers)
}

func TestProcessBatchInvariantViolation(t *testing.T) {
	p := NewPostProcessor(MetricSquad)
	instances := []InferInstance{{Tokens: []string{"a"}, Question: "q?"}}
	// 2 lens positions but only 3 probabilities: must fault, never truncate
	out := BatchOutput{
		Lens:  []float64{2},
		Probs: []float64{0.5, 0.5, 0.5},
	}

	_, _, _, err := p.ProcessBatch(instances, out)
	var inv *internalErr.InvariantViolation
	assert.ErrorAs(t, err, &inv)
}

func TestProcessBatchQueryIDIncreasesAcrossBatches(t *testing.T) {
	p := NewPostProcessor(MetricSquad)
	instances := []InferInstance{
		{Tokens: []string{"x"}, Question: "q1", Answers: []string{"x"}},
		{Tokens: []string{"y"}, Question: "q2", Answers: []string{"y"}},
	}
	out := BatchOutput{Lens: []float64{1, 1}, Probs: []float64{1, 1, 1, 1}}

	_, preds1, _, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)
	_, preds2, _, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)

	assert.Equal(t, 0, preds1[0].Query)
	assert.Equal(t, 1, preds1[1].Query)
	// not reset between batches of the same run
	assert.Equal(t, 2, preds2[0].Query)
	assert.Equal(t, 3, preds2[1].Query)
}

func TestProcessBatchMarcoConsumesFiveLens(t *testing.T) {
	p := NewPostProcessor(MetricMarco)
	instances := []InferInstance{
		{Tokens: []string{"t0", "t1", "t2", "t3", "t4"}, Question: "q?", Answers: []string{"t2"}},
	}
	// 5 docs of length 1 each, concatenated into one 5-position example
	out := BatchOutput{
		Lens:  []float64{1, 1, 1, 1, 1},
		Probs: []float64{0.1, 0.1, 0.5, 0.2, 0.1, 0.1, 0.1, 0.6, 0.1, 0.1},
	}

	_, preds, _, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2"}, preds[0].Answers)
}

func TestProcessBatchTieBrokenByLowestIndex(t *testing.T) {
	p := NewPostProcessor(MetricSquad)
	instances := []InferInstance{
		{Tokens: []string{"a", "b", "c"}, Question: "q?", Answers: []string{"a"}},
	}
	out := BatchOutput{
		Lens:  []float64{3},
		Probs: []float64{0.4, 0.4, 0.2, 0.5, 0.3, 0.2},
	}

	_, preds, _, err := p.ProcessBatch(instances, out)
	assert.NoError(t, err)
	// start ties at 0 and 1, first occurrence wins; end restricted to [0:]
	assert.Equal(t, []string{"a"}, preds[0].Answers)
}
