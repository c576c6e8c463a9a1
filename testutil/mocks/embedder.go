package mocks

import (
	"context"
	"sync"

	"github.com/karimelsayad/bookrag/llm/embedding"
)

// Embedder is a deterministic embedding.Provider. Known texts map to fixed
// vectors; unknown texts embed to a unit vector on the last axis.
type Embedder struct {
	mu      sync.Mutex
	dims    int
	vectors map[string][]float64
	err     error
	queries []string
}

// NewEmbedder creates an Embedder with the given dimensionality.
func NewEmbedder(dims int) *Embedder {
	return &Embedder{dims: dims, vectors: make(map[string][]float64)}
}

// WithVector pins the embedding for a specific text.
func (e *Embedder) WithVector(text string, vector []float64) *Embedder {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vectors[text] = vector
	return e
}

// WithError makes every call fail with err.
func (e *Embedder) WithError(err error) *Embedder {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
	return e
}

// Embed implements embedding.Provider.
func (e *Embedder) Embed(_ context.Context, req *embedding.Request) (*embedding.Response, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	resp := &embedding.Response{Provider: "mock", Model: "mock-embed"}
	for i, input := range req.Input {
		resp.Embeddings = append(resp.Embeddings, embedding.Data{
			Index:     i,
			Embedding: e.vectorFor(input),
		})
	}
	return resp, nil
}

// EmbedQuery implements embedding.Provider and records the query.
func (e *Embedder) EmbedQuery(_ context.Context, query string) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries = append(e.queries, query)
	if e.err != nil {
		return nil, e.err
	}
	return e.vectorFor(query), nil
}

// EmbedDocuments implements embedding.Provider.
func (e *Embedder) EmbedDocuments(_ context.Context, documents []string) ([][]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float64, len(documents))
	for i, d := range documents {
		out[i] = e.vectorFor(d)
	}
	return out, nil
}

// Name implements embedding.Provider.
func (e *Embedder) Name() string { return "mock" }

// Dimensions implements embedding.Provider.
func (e *Embedder) Dimensions() int { return e.dims }

// MaxBatchSize implements embedding.Provider.
func (e *Embedder) MaxBatchSize() int { return 64 }

// Queries returns the queries embedded so far, in order.
func (e *Embedder) Queries() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.queries...)
}

func (e *Embedder) vectorFor(text string) []float64 {
	if v, ok := e.vectors[text]; ok {
		return v
	}
	v := make([]float64, e.dims)
	v[e.dims-1] = 1
	return v
}
