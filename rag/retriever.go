package rag

import (
	"context"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm/embedding"
)

// DefaultTopK matches the deployment's retriever configuration.
const DefaultTopK = 5

// Retriever embeds a query with the ingestion-time embedder and performs a
// nearest-neighbor search over the collection.
type Retriever struct {
	embedder embedding.Provider
	store    VectorStore
	logger   *zap.Logger
}

// NewRetriever creates a knowledge retriever.
func NewRetriever(embedder embedding.Provider, store VectorStore, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{
		embedder: embedder,
		store:    store,
		logger:   logger.With(zap.String("component", "retriever")),
	}
}

// Retrieve returns the k most similar passages, ordered by descending
// similarity. An empty result is a valid, non-error outcome.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]Passage, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := r.store.Search(ctx, vector, k)
	if err != nil {
		return nil, err
	}

	passages := make([]Passage, 0, len(results))
	for _, res := range results {
		passages = append(passages, NewPassage(res.Document, res.Score))
	}

	r.logger.Debug("retrieval completed",
		zap.String("query", query),
		zap.Int("k", k),
		zap.Int("passages", len(passages)))
	return passages, nil
}
