package qa

import (
	"fmt"
	"strings"

	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/utils"
)

// docNumForMetric returns how many paragraph lengths the post-processor
// consumes per example. MS-MARCO examples carry 5 candidate paragraphs,
// SQuAD carries 1.
func docNumForMetric(metric MetricKind) int {
	if metric == MetricMarco {
		return 5
	}
	return 1
}

// PostProcessor turns batched network output back into answer text. One
// instance lives for a whole evaluation run: queryID increases across
// batches and is never reset. Single writer, no concurrent batches.
type PostProcessor struct {
	docNum  int
	queryID int
}

func NewPostProcessor(metric MetricKind) *PostProcessor {
	return &PostProcessor{docNum: docNumForMetric(metric)}
}

// ProcessBatch extracts the best answer span per example.
//
// Per example: sum docNum consecutive lengths into probLen, slice the
// start and end probability ranges, take the first-occurrence argmax for
// the start, then restrict the end argmax to positions >= start. When the
// start lands on the last position the end search is unrestricted; if
// that leaves end < start the prediction is the empty span. The violated
// size invariant is a programming error upstream, not a data condition.
func (p *PostProcessor) ProcessBatch(instances []InferInstance, out BatchOutput) (refs, preds []AnswerRecord, stored []StoredRecord, err error) {
	lenSum := utils.SumInt(out.Lens)
	if len(out.Probs) != 2*lenSum {
		return nil, nil, nil, &errors.InvariantViolation{
			ErrorMsg: fmt.Sprintf("post-process: %d probabilities for %d total paragraph positions, want %d",
				len(out.Probs), lenSum, 2*lenSum),
		}
	}

	refs = make([]AnswerRecord, 0, len(instances))
	preds = make([]AnswerRecord, 0, len(instances))
	stored = make([]StoredRecord, 0, len(instances))

	idxLen := 0
	idxProb := 0
	for _, ins := range instances {
		probLen := utils.SumInt(out.Lens[idxLen : idxLen+p.docNum])
		startProbSlice := out.Probs[idxProb : idxProb+probLen]
		endProbSlice := out.Probs[idxProb+probLen : idxProb+2*probLen]

		startIdx := utils.Argmax(startProbSlice)
		var endIdx int
		if startIdx < probLen-1 {
			endIdx = startIdx + utils.Argmax(endProbSlice[startIdx:])
		} else {
			endIdx = startIdx
		}

		pred := ""
		if startIdx <= endIdx {
			pred = strings.Join(ins.Tokens[startIdx:endIdx+1], " ")
		}

		idxLen += p.docNum
		idxProb += 2 * probLen

		preds = append(preds, AnswerRecord{Answers: []string{pred}, Query: p.queryID, Question: ins.Question})
		refs = append(refs, AnswerRecord{Answers: ins.Answers, Query: p.queryID, Question: ins.Question})
		stored = append(stored, StoredRecord{
			Question:   ins.Question,
			Query:      p.queryID,
			AnswerRef:  ins.Answers,
			AnswerPred: []string{pred},
		})
		p.queryID++
	}
	return refs, preds, stored, nil
}
