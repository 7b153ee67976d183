package qa

import (
	"github.com/Meesho/BharatMLStack/qaflow/graph"
	"github.com/Meesho/BharatMLStack/qaflow/pkg/utils"
)

// BaselineNetwork is the simplest member of the architecture family:
// each paragraph position is encoded as its token embedding concatenated
// with the mean question embedding, then handed to the start and end
// pointer heads. Match-LSTM and BiDAF replace the encoder, the heads and
// everything downstream stay shared.
type BaselineNetwork struct {
	emb   *graph.Embedding
	start *SpanDecoder
	end   *SpanDecoder
}

func NewBaselineNetwork(params *graph.Params, emb *graph.Embedding) (Network, error) {
	width := 2 * emb.Dim()
	start, err := NewSpanDecoder(params, "baseline.start", width)
	if err != nil {
		return nil, err
	}
	end, err := NewSpanDecoder(params, "baseline.end", width)
	if err != nil {
		return nil, err
	}
	return &BaselineNetwork{emb: emb, start: start, end: end}, nil
}

func (n *BaselineNetwork) BuildForwardGraph(batch *Batch) ([][]float64, [][]float64, error) {
	startProbs := make([][]float64, len(batch.PassageIDs))
	endProbs := make([][]float64, len(batch.PassageIDs))

	for i, docs := range batch.PassageIDs {
		qEmb, err := n.emb.Lookup(batch.QuestionIDs[i])
		if err != nil {
			return nil, nil, err
		}
		qMean := utils.Mean(qEmb, n.emb.Dim())

		var encoding [][]float64
		for _, doc := range docs {
			pEmb, err := n.emb.Lookup(doc)
			if err != nil {
				return nil, nil, err
			}
			for _, vec := range pEmb {
				enc := make([]float64, 0, 2*n.emb.Dim())
				enc = append(enc, vec...)
				enc = append(enc, qMean...)
				encoding = append(encoding, enc)
			}
		}

		if startProbs[i], err = n.start.Decode(encoding); err != nil {
			return nil, nil, err
		}
		if endProbs[i], err = n.end.Decode(encoding); err != nil {
			return nil, nil, err
		}
	}
	return startProbs, endProbs, nil
}
