package graph

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// Embedding wraps the shared "<model>.embs" table. The question encoder
// and every passage encoder look up through the same handle.
type Embedding struct {
	table *Weight
	dim   int
}

func NewEmbedding(params *Params, modelName string, vocabSize, embDim int, static bool) *Embedding {
	w := params.Register(modelName+".embs", vocabSize, embDim, static)
	return &Embedding{table: w, dim: embDim}
}

func (e *Embedding) Dim() int {
	return e.dim
}

func (e *Embedding) Weight() *Weight {
	return e.table
}

// Lookup maps a token-id sequence to its embedding sequence. Ids must
// already be in-vocabulary, OOV mapping happens upstream in the
// vocabulary builder.
func (e *Embedding) Lookup(ids []int) ([][]float64, error) {
	out := make([][]float64, len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(e.table.Rows) {
			return nil, &errors.InvariantViolation{
				ErrorMsg: fmt.Sprintf("token id %d out of range for table %s of size %d", id, e.table.Name, len(e.table.Rows)),
			}
		}
		out[i] = e.table.Rows[id]
	}
	return out, nil
}
