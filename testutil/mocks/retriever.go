package mocks

import (
	"context"
	"sync"

	"github.com/karimelsayad/bookrag/rag"
)

// Retriever is a scripted knowledge retriever. Result sets are consumed in
// order; the last set repeats once the script runs out.
type Retriever struct {
	mu      sync.Mutex
	results [][]rag.Passage
	nextIdx int
	err     error
	queries []string
}

// NewRetriever creates a Retriever that plays back the given result sets.
func NewRetriever(results ...[]rag.Passage) *Retriever {
	return &Retriever{results: results}
}

// WithError makes every call fail with err.
func (r *Retriever) WithError(err error) *Retriever {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	return r
}

// Retrieve implements the agent's retriever contract.
func (r *Retriever) Retrieve(_ context.Context, query string, k int) ([]rag.Passage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = append(r.queries, query)
	if r.err != nil {
		return nil, r.err
	}
	if len(r.results) == 0 {
		return nil, nil
	}

	idx := r.nextIdx
	if idx >= len(r.results) {
		idx = len(r.results) - 1
	}
	r.nextIdx++

	passages := r.results[idx]
	if k > 0 && len(passages) > k {
		passages = passages[:k]
	}
	return passages, nil
}

// Queries returns the queries retrieved so far, in order.
func (r *Retriever) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.queries...)
}

// CallCount returns the number of Retrieve calls made so far.
func (r *Retriever) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queries)
}
