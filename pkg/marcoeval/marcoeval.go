// Package marcoeval scores predicted answers MS-MARCO-style: corpus-level
// Bleu-1..4 with brevity penalty and average Rouge-L, considering at most
// maxRefs references per query.
package marcoeval

import (
	"math"
	"strings"
)

const rougeBeta = 1.2

// Record is one query's answer list.
type Record struct {
	Query   int
	Answers []string
}

// ComputeMetricsFromList matches predictions to references by query id
// and returns bleu_1..bleu_4 and rouge_l.
func ComputeMetricsFromList(preds, refs []Record, maxRefs int) map[string]float64 {
	refByQuery := make(map[int][]string, len(refs))
	for _, r := range refs {
		answers := r.Answers
		if maxRefs > 0 && len(answers) > maxRefs {
			answers = answers[:maxRefs]
		}
		refByQuery[r.Query] = answers
	}

	b := newBleuAccumulator()
	var rougeSum float64
	var count int
	for _, p := range preds {
		pred := ""
		if len(p.Answers) > 0 {
			pred = p.Answers[0]
		}
		refAnswers := refByQuery[p.Query]
		b.add(pred, refAnswers)
		rougeSum += rougeL(pred, refAnswers)
		count++
	}

	metrics := b.scores()
	if count == 0 {
		count = 1
	}
	metrics["rouge_l"] = rougeSum / float64(count)
	return metrics
}

// rougeL is the LCS-based Rouge-L F-measure, best over the references.
func rougeL(pred string, refAnswers []string) float64 {
	cand := strings.Fields(strings.ToLower(pred))
	if len(cand) == 0 {
		return 0
	}
	var best float64
	for _, refAnswer := range refAnswers {
		ref := strings.Fields(strings.ToLower(refAnswer))
		if len(ref) == 0 {
			continue
		}
		lcs := float64(lcsLength(cand, ref))
		if lcs == 0 {
			continue
		}
		prec := lcs / float64(len(cand))
		rec := lcs / float64(len(ref))
		f := (1 + rougeBeta*rougeBeta) * prec * rec / (rec + rougeBeta*rougeBeta*prec)
		if f > best {
			best = f
		}
	}
	return best
}

func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// bleuAccumulator aggregates clipped n-gram matches corpus-wide so short
// answers do not dominate the way a sentence-averaged Bleu would.
type bleuAccumulator struct {
	matches [4]float64
	totals  [4]float64
	candLen int
	refLen  int
}

func newBleuAccumulator() *bleuAccumulator {
	return &bleuAccumulator{}
}

func (b *bleuAccumulator) add(pred string, refAnswers []string) {
	cand := strings.Fields(strings.ToLower(pred))
	b.candLen += len(cand)
	b.refLen += closestRefLength(len(cand), refAnswers)

	for n := 1; n <= 4; n++ {
		candCounts := ngramCounts(cand, n)
		maxRefCounts := make(map[string]int)
		for _, refAnswer := range refAnswers {
			for gram, c := range ngramCounts(strings.Fields(strings.ToLower(refAnswer)), n) {
				if c > maxRefCounts[gram] {
					maxRefCounts[gram] = c
				}
			}
		}
		for gram, c := range candCounts {
			b.totals[n-1] += float64(c)
			clipped := c
			if clipped > maxRefCounts[gram] {
				clipped = maxRefCounts[gram]
			}
			b.matches[n-1] += float64(clipped)
		}
	}
}

func (b *bleuAccumulator) scores() map[string]float64 {
	bp := 1.0
	if b.candLen < b.refLen && b.candLen > 0 {
		bp = math.Exp(1 - float64(b.refLen)/float64(b.candLen))
	}

	metrics := make(map[string]float64, 5)
	logSum := 0.0
	for n := 1; n <= 4; n++ {
		var p float64
		if b.totals[n-1] > 0 {
			p = b.matches[n-1] / b.totals[n-1]
		}
		if p == 0 {
			logSum = math.Inf(-1)
		} else {
			logSum += math.Log(p)
		}
		name := "bleu_" + string(rune('0'+n))
		if logSum == math.Inf(-1) {
			metrics[name] = 0
		} else {
			metrics[name] = bp * math.Exp(logSum/float64(n))
		}
	}
	return metrics
}

func closestRefLength(candLen int, refAnswers []string) int {
	best := 0
	bestDiff := math.MaxInt32
	for _, refAnswer := range refAnswers {
		l := len(strings.Fields(refAnswer))
		diff := l - candLen
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff || (diff == bestDiff && l < best) {
			best = l
			bestDiff = diff
		}
	}
	return best
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
