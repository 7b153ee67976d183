package graph

import "sync"

// Weight is a named parameter table. Static weights are excluded from
// gradient updates by the training driver; nothing at inference time
// branches on the flag.
type Weight struct {
	Name   string
	Rows   [][]float64
	Static bool
}

// Params is a registry of named weights. A name has at most one logical
// owner: registering an existing name returns the original handle, so
// every call site that asks for "<model>.embs" shares the same table.
type Params struct {
	mu      sync.Mutex
	weights map[string]*Weight
}

func NewParams() *Params {
	return &Params{weights: make(map[string]*Weight)}
}

// Register returns the weight registered under name, creating a zeroed
// rows x cols table on first use.
func (p *Params) Register(name string, rows, cols int, static bool) *Weight {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.weights[name]; ok {
		return w
	}
	block := make([]float64, rows*cols)
	table := make([][]float64, rows)
	for i := range table {
		table[i] = block[i*cols : (i+1)*cols]
	}
	w := &Weight{Name: name, Rows: table, Static: static}
	p.weights[name] = w
	return w
}

func (p *Params) Get(name string) (*Weight, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.weights[name]
	return w, ok
}
