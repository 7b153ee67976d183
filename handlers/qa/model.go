package qa

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/qaflow/graph"
	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// Network is the forward-computation strategy implemented once per
// architecture (Match-LSTM, BiDAF). It returns one start and one end
// probability distribution per example, each over the example's
// concatenated paragraph positions.
type Network interface {
	BuildForwardGraph(batch *Batch) (startProbs, endProbs [][]float64, err error)
}

// NetworkBuilder constructs an architecture against the model's shared
// parameter registry and embedding table.
type NetworkBuilder func(params *graph.Params, emb *graph.Embedding) (Network, error)

// Batch is one batch of examples fed to the forward network. Labels are
// present in training mode only, already concatenated across documents.
type Batch struct {
	QuestionIDs [][]int
	PassageIDs  [][][]int
	StartLabels [][]float64
	EndLabels   [][]float64
	Instances   []InferInstance
}

// QAModel is the shared scaffold of the reading-comprehension models:
// schema validation at construction, the shared embedding table, and the
// train/infer entry points around the architecture-specific network.
type QAModel struct {
	conf    ModelConfig
	fields  *InputFields
	params  *graph.Params
	emb     *graph.Embedding
	network Network
}

func NewQAModel(conf ModelConfig, buildNetwork NetworkBuilder) (*QAModel, error) {
	if conf.EmbDim <= 0 || conf.VocabSize <= 0 || conf.DocNum <= 0 {
		return nil, &errors.BadRequestError{
			ErrorMsg: fmt.Sprintf("model %s: emb_dim %d, vocab_size %d and doc_num %d must be positive",
				conf.Name, conf.EmbDim, conf.VocabSize, conf.DocNum),
		}
	}
	fields, err := ParseInputSchema(conf.InputFields, conf.DocNum, conf.IsInfer)
	if err != nil {
		return nil, err
	}
	params := graph.NewParams()
	emb := graph.NewEmbedding(params, conf.Name, conf.VocabSize, conf.EmbDim, conf.StaticEmb)
	network, err := buildNetwork(params, emb)
	if err != nil {
		return nil, err
	}
	return &QAModel{
		conf:    conf,
		fields:  fields,
		params:  params,
		emb:     emb,
		network: network,
	}, nil
}

func (m *QAModel) Config() ModelConfig {
	return m.conf
}

func (m *QAModel) Fields() *InputFields {
	return m.fields
}

func (m *QAModel) Params() *graph.Params {
	return m.params
}

// Embedding returns the shared table; the question encoder and every
// passage encoder go through this one handle.
func (m *QAModel) Embedding() *graph.Embedding {
	return m.emb
}

// Train runs the forward network and returns the scalar batch loss.
func (m *QAModel) Train(batch *Batch) (float64, error) {
	if m.conf.IsInfer {
		return 0, &errors.BadRequestError{ErrorMsg: fmt.Sprintf("model %s is in inference mode", m.conf.Name)}
	}
	startProbs, endProbs, err := m.network.BuildForwardGraph(batch)
	if err != nil {
		return 0, err
	}
	return BatchJointLoss(startProbs, endProbs, batch.StartLabels, batch.EndLabels)
}

// Infer runs the forward network and flattens the result into the
// batched shape the post-processor consumes: DocNum paragraph lengths
// per example, then per example the start probabilities followed by the
// end probabilities.
func (m *QAModel) Infer(batch *Batch) (BatchOutput, error) {
	if !m.conf.IsInfer {
		return BatchOutput{}, &errors.BadRequestError{ErrorMsg: fmt.Sprintf("model %s is in training mode", m.conf.Name)}
	}
	startProbs, endProbs, err := m.network.BuildForwardGraph(batch)
	if err != nil {
		return BatchOutput{}, err
	}

	var out BatchOutput
	for i, docs := range batch.PassageIDs {
		for _, doc := range docs {
			out.Lens = append(out.Lens, float64(len(doc)))
		}
		out.Probs = append(out.Probs, startProbs[i]...)
		out.Probs = append(out.Probs, endProbs[i]...)
	}
	return out, nil
}

// Evaluate post-processes the run's inference output (or reloads it from
// inferFile) and scores it with the configured metric back end. Query ids
// restart at 0 per evaluation run.
func (m *QAModel) Evaluate(inferFile string, ret []InferBatch, fromFile bool) (map[string]float64, error) {
	return NewEvaluator(m.conf.Metric).Evaluate(inferFile, ret, fromFile)
}
