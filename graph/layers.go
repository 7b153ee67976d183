package graph

import (
	"fmt"
	"math"

	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// FCTanh applies a bias-free fully connected projection followed by tanh
// to every position of a sequence. w is laid out [in][out].
func FCTanh(input [][]float64, w *Weight) ([][]float64, error) {
	if len(input) == 0 {
		return nil, nil
	}
	in := len(w.Rows)
	if len(input[0]) != in {
		return nil, &errors.InvariantViolation{
			ErrorMsg: fmt.Sprintf("fc %s: input width %d does not match weight rows %d", w.Name, len(input[0]), in),
		}
	}
	out := len(w.Rows[0])
	block := make([]float64, len(input)*out)
	result := make([][]float64, len(input))
	for pos, vec := range input {
		row := block[pos*out : (pos+1)*out]
		for j := 0; j < out; j++ {
			var sum float64
			for i := 0; i < in; i++ {
				sum += vec[i] * w.Rows[i][j]
			}
			row[j] = math.Tanh(sum)
		}
		result[pos] = row
	}
	return result, nil
}

// Score collapses each position to a single bias-free scalar. w is a
// column vector stored as [in][1].
func Score(input [][]float64, w *Weight) ([]float64, error) {
	in := len(w.Rows)
	scores := make([]float64, len(input))
	for pos, vec := range input {
		if len(vec) != in {
			return nil, &errors.InvariantViolation{
				ErrorMsg: fmt.Sprintf("score %s: input width %d does not match weight rows %d", w.Name, len(vec), in),
			}
		}
		var sum float64
		for i := 0; i < in; i++ {
			sum += vec[i] * w.Rows[i][0]
		}
		scores[pos] = sum
	}
	return scores, nil
}

// SeqSoftmax normalizes one example's position scores into a probability
// distribution. Callers hand in exactly one example's range; the function
// never sees batch boundaries.
func SeqSoftmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
