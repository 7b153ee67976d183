package qa

// MetricKind selects the evaluation back end.
type MetricKind string

const (
	MetricMarco MetricKind = "marco"
	MetricSquad MetricKind = "squad"
)

// ModelConfig is immutable after construction and validated once.
type ModelConfig struct {
	Name        string
	InputFields []string
	EmbDim      int
	VocabSize   int
	IsInfer     bool
	DocNum      int
	StaticEmb   bool
	Metric      MetricKind
}

// InputFields holds the typed field handles parsed out of the positional
// input schema. PassageLens and the label fields are logically one
// concatenated sequence per example, in document order.
type InputFields struct {
	QuestionIDs string
	PassageIDs  []string
	PassageLens []string
	StartLabels []string
	EndLabels   []string
}

// InferInstance is the per-example batch input the post-processor needs
// next to the raw network output.
type InferInstance struct {
	Tokens   []string
	Question string
	Answers  []string
}

// BatchOutput is one inference batch's flattened network output: DocNum
// paragraph lengths per example, then the start probabilities followed by
// the end probabilities over each example's concatenated paragraphs.
// Consumed exactly once, len(Probs) == 2*sum(Lens) must hold.
type BatchOutput struct {
	Lens  []float64
	Probs []float64
}

// InferBatch pairs one batch's instances with its network output.
type InferBatch struct {
	Instances []InferInstance
	Output    BatchOutput
}

// AnswerRecord is the shape the metric back ends consume.
type AnswerRecord struct {
	Answers  []string `json:"answer"`
	Query    int      `json:"query"`
	Question string   `json:"question,omitempty"`
}

// StoredRecord is one persisted JSON line of the infer file.
type StoredRecord struct {
	Question   string   `json:"question"`
	Query      int      `json:"query"`
	AnswerRef  []string `json:"answer_ref"`
	AnswerPred []string `json:"answer_pred"`
}
