package qa

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/marcoeval"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/squadeval"
)

// Metric back-end contracts. Both are pluggable; the defaults are the
// in-tree squadeval and marcoeval packages.
type SquadMetricFunc func(preds, refs []AnswerRecord) map[string]float64

type MarcoMetricFunc func(preds, refs []AnswerRecord, maxRefs int) map[string]float64

// Evaluator reconciles predicted spans against reference answers and
// dispatches to the configured metric back end. Evaluated is terminal for
// a given infer file.
type Evaluator struct {
	metric  MetricKind
	post    *PostProcessor
	squadFn SquadMetricFunc
	marcoFn MarcoMetricFunc
}

func NewEvaluator(metric MetricKind) *Evaluator {
	return &Evaluator{
		metric: metric,
		post:   NewPostProcessor(metric),
		squadFn: func(preds, refs []AnswerRecord) map[string]float64 {
			return squadeval.EvalLists(toSquadRecords(preds), toSquadRecords(refs))
		},
		marcoFn: func(preds, refs []AnswerRecord, maxRefs int) map[string]float64 {
			return marcoeval.ComputeMetricsFromList(toMarcoRecords(preds), toMarcoRecords(refs), maxRefs)
		},
	}
}

func toSquadRecords(records []AnswerRecord) []squadeval.Record {
	out := make([]squadeval.Record, len(records))
	for i, r := range records {
		out[i] = squadeval.Record{Query: r.Query, Answers: r.Answers}
	}
	return out
}

func toMarcoRecords(records []AnswerRecord) []marcoeval.Record {
	out := make([]marcoeval.Record, len(records))
	for i, r := range records {
		out[i] = marcoeval.Record{Query: r.Query, Answers: r.Answers}
	}
	return out
}

// Evaluate scores one run. With fromFile the infer file's persisted
// records are reloaded and the expensive inference output is not needed;
// otherwise ret is post-processed and every stored record is written to
// inferFile as one JSON line before scoring.
func (e *Evaluator) Evaluate(inferFile string, ret []InferBatch, fromFile bool) (map[string]float64, error) {
	var refList, predList []AnswerRecord

	if fromFile {
		var err error
		refList, predList, err = readList(inferFile)
		if err != nil {
			return nil, err
		}
	} else {
		var stored []StoredRecord
		for _, batch := range ret {
			refs, preds, objs, err := e.post.ProcessBatch(batch.Instances, batch.Output)
			if err != nil {
				return nil, err
			}
			refList = append(refList, refs...)
			predList = append(predList, preds...)
			stored = append(stored, objs...)
		}
		if err := writeList(inferFile, stored); err != nil {
			return nil, err
		}
	}

	var metrics map[string]float64
	switch e.metric {
	case MetricMarco:
		metrics = e.marcoFn(predList, refList, 1)
	case MetricSquad:
		metrics = e.squadFn(predList, refList)
	default:
		return nil, &errors.UnsupportedMetricError{Metric: string(e.metric)}
	}

	logger.Info(fmt.Sprintf("%s %s", inferFile, formatMetrics(metrics)))
	return metrics, nil
}

// readList rebuilds the reference and prediction lists from a persisted
// JSON-lines infer file, order-preserving by query. A malformed line is
// surfaced immediately, there is no partial-record recovery.
func readList(inferFile string) (refList, predList []AnswerRecord, err error) {
	f, err := os.Open(inferFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var obj StoredRecord
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, nil, &errors.ParsingError{
				ErrorMsg: fmt.Sprintf("malformed record at %s:%d: %v", inferFile, lineNo, err),
			}
		}
		refList = append(refList, AnswerRecord{Query: obj.Query, Answers: obj.AnswerRef})
		predList = append(predList, AnswerRecord{Query: obj.Query, Answers: obj.AnswerPred})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return refList, predList, nil
}

// writeList persists the stored records as UTF-8 JSON lines. Non-ASCII
// text stays literal. The file is flushed before scoring proceeds.
func writeList(inferFile string, stored []StoredRecord) error {
	f, err := os.Create(inferFile)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, obj := range stored {
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return w.Flush()
}

func formatMetrics(metrics map[string]float64) string {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, metrics[k]))
	}
	return strings.Join(parts, " ")
}
