package qa

import (
	"fmt"
	"math"

	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// JointLoss computes -log P(start) - log P(end) for one example: start
// and end probabilities are concatenated, matched elementwise against the
// concatenated one-hot labels, and summed over the position axis.
// log(0) is -Inf; an all-zero label row is the caller's bug, not guarded.
func JointLoss(startProb, endProb, startLabel, endLabel []float64) (float64, error) {
	if len(startProb) != len(startLabel) || len(endProb) != len(endLabel) {
		return 0, &errors.InvariantViolation{
			ErrorMsg: fmt.Sprintf("loss: prob/label length mismatch: start %d vs %d, end %d vs %d",
				len(startProb), len(startLabel), len(endProb), len(endLabel)),
		}
	}
	probs := append(append([]float64{}, startProb...), endProb...)
	labels := append(append([]float64{}, startLabel...), endLabel...)

	var loss float64
	for i := range probs {
		loss += -math.Log(probs[i]) * labels[i]
	}
	return loss, nil
}

// BatchJointLoss sums the per-example losses into the scalar training
// cost. Additive over the batch, so example order does not matter.
func BatchJointLoss(startProbs, endProbs, startLabels, endLabels [][]float64) (float64, error) {
	if len(startProbs) != len(endProbs) || len(startProbs) != len(startLabels) || len(startProbs) != len(endLabels) {
		return 0, &errors.InvariantViolation{
			ErrorMsg: fmt.Sprintf("loss: batch size mismatch: %d/%d/%d/%d examples",
				len(startProbs), len(endProbs), len(startLabels), len(endLabels)),
		}
	}
	var total float64
	for i := range startProbs {
		loss, err := JointLoss(startProbs[i], endProbs[i], startLabels[i], endLabels[i])
		if err != nil {
			return 0, err
		}
		total += loss
	}
	return total, nil
}
