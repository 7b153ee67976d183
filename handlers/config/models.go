package config

// Config describes one registered QA model.
type Config struct {
	Name        string   `json:"name"`
	InputFields []string `json:"input_fields"`
	EmbDim      int      `json:"emb_dim"`
	VocabSize   int      `json:"vocab_size"`
	IsInfer     bool     `json:"is_infer"`
	DocNum      int      `json:"doc_num"`
	StaticEmb   bool     `json:"static_emb"`
	Metric      string   `json:"metric"`
	InferFile   string   `json:"infer_file"`
}

type ModelConfig struct {
	ConfigMap map[string]Config `json:"config_map"`
}
