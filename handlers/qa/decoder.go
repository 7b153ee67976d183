package qa

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/qaflow/graph"
	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// SpanDecoder is the answer pointer head: a paragraph encoding of even
// width D is compressed to D/2 tanh features, scored per position, then
// normalized over the example's own position range. One decoder instance
// is built for the start head and one for the end head.
type SpanDecoder struct {
	name   string
	hidden *graph.Weight
	score  *graph.Weight
}

func NewSpanDecoder(params *graph.Params, name string, width int) (*SpanDecoder, error) {
	if width <= 0 || width%2 != 0 {
		return nil, &errors.InvariantViolation{
			ErrorMsg: fmt.Sprintf("decoder %s: encoding width %d must be even and positive", name, width),
		}
	}
	return &SpanDecoder{
		name:   name,
		hidden: params.Register(name+".w0", width, width/2, false),
		score:  params.Register(name+".w1", width/2, 1, false),
	}, nil
}

// Decode maps one example's concatenated paragraph encoding to a
// probability distribution over its positions. Paragraph boundaries
// inside the example are crossed, example boundaries never are.
func (d *SpanDecoder) Decode(encoding [][]float64) ([]float64, error) {
	latent, err := graph.FCTanh(encoding, d.hidden)
	if err != nil {
		return nil, err
	}
	scores, err := graph.Score(latent, d.score)
	if err != nil {
		return nil, err
	}
	return graph.SeqSoftmax(scores), nil
}

// DecodeBatch runs Decode independently per example.
func (d *SpanDecoder) DecodeBatch(encodings [][][]float64) ([][]float64, error) {
	probs := make([][]float64, len(encodings))
	for i, enc := range encodings {
		p, err := d.Decode(enc)
		if err != nil {
			return nil, err
		}
		probs[i] = p
	}
	return probs, nil
}
