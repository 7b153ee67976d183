// Package squadeval scores predicted answers SQuAD-style: exact match
// and token-level F1 against the best reference, reported as percentages
// over the example count.
package squadeval

import (
	"strings"
	"unicode"
)

// Record is one query's answer list. Predictions carry 0 or 1 answers,
// references carry every acceptable answer.
type Record struct {
	Query   int
	Answers []string
}

// EvalLists matches predictions to references by query id and averages
// exact match and F1 over the prediction list.
func EvalLists(preds, refs []Record) map[string]float64 {
	refByQuery := make(map[int][]string, len(refs))
	for _, r := range refs {
		refByQuery[r.Query] = r.Answers
	}

	var em, f1 float64
	for _, p := range preds {
		pred := ""
		if len(p.Answers) > 0 {
			pred = p.Answers[0]
		}
		groundTruths := refByQuery[p.Query]
		em += metricMaxOverGroundTruths(exactMatch, pred, groundTruths)
		f1 += metricMaxOverGroundTruths(f1Score, pred, groundTruths)
	}
	total := float64(len(preds))
	if total == 0 {
		total = 1
	}
	return map[string]float64{
		"exact_match": 100.0 * em / total,
		"f1":          100.0 * f1 / total,
	}
}

func metricMaxOverGroundTruths(metric func(pred, truth string) float64, pred string, truths []string) float64 {
	var best float64
	for _, truth := range truths {
		if score := metric(pred, truth); score > best {
			best = score
		}
	}
	return best
}

func exactMatch(pred, truth string) float64 {
	if normalizeAnswer(pred) == normalizeAnswer(truth) {
		return 1
	}
	return 0
}

func f1Score(pred, truth string) float64 {
	predTokens := strings.Fields(normalizeAnswer(pred))
	truthTokens := strings.Fields(normalizeAnswer(truth))
	if len(predTokens) == 0 || len(truthTokens) == 0 {
		return 0
	}

	truthCounts := make(map[string]int, len(truthTokens))
	for _, tok := range truthTokens {
		truthCounts[tok]++
	}
	common := 0
	for _, tok := range predTokens {
		if truthCounts[tok] > 0 {
			truthCounts[tok]--
			common++
		}
	}
	if common == 0 {
		return 0
	}
	precision := float64(common) / float64(len(predTokens))
	recall := float64(common) / float64(len(truthTokens))
	return 2 * precision * recall / (precision + recall)
}

// normalizeAnswer lowercases, strips punctuation and the articles
// a/an/the, and squeezes whitespace.
func normalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsPunct(r) {
			b.WriteRune(r)
		}
	}
	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok == "a" || tok == "an" || tok == "the" {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
