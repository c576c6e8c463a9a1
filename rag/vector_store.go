package rag

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// VectorStore is the similarity-search index interface. Safe for concurrent
// reads; the collection is read-only once ingested.
type VectorStore interface {
	// AddDocuments upserts documents with their embeddings.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search returns the topK nearest documents by descending similarity.
	Search(ctx context.Context, queryEmbedding []float64, topK int) ([]VectorSearchResult, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}

// CollectionManager is an optional interface for stores backed by a named
// collection whose dimensionality is fixed at creation time.
type CollectionManager interface {
	// RecreateCollection drops and recreates the collection with the given
	// vector size. Used by ingestion only.
	RecreateCollection(ctx context.Context, vectorSize int) error

	// CollectionExists reports whether the collection is present.
	CollectionExists(ctx context.Context) (bool, error)
}

// VectorSearchResult pairs a document with its similarity score.
type VectorSearchResult struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// InMemoryVectorStore is a cosine-similarity store for tests and small
// corpora.
type InMemoryVectorStore struct {
	mu        sync.RWMutex
	documents []Document
	dims      int
	logger    *zap.Logger
}

// NewInMemoryVectorStore creates an in-memory vector store.
func NewInMemoryVectorStore(logger *zap.Logger) *InMemoryVectorStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryVectorStore{
		documents: make([]Document, 0),
		logger:    logger,
	}
}

// AddDocuments stores documents, enforcing a uniform embedding dimension.
func (s *InMemoryVectorStore) AddDocuments(ctx context.Context, docs []Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		if len(doc.Embedding) == 0 {
			return fmt.Errorf("document %s has no embedding", doc.ID)
		}
		if s.dims == 0 {
			s.dims = len(doc.Embedding)
		}
		if len(doc.Embedding) != s.dims {
			return fmt.Errorf("document %s embedding dimension mismatch: got=%d want=%d",
				doc.ID, len(doc.Embedding), s.dims)
		}
		s.documents = append(s.documents, doc)
	}

	s.logger.Debug("documents added to vector store",
		zap.Int("count", len(docs)),
		zap.Int("total", len(s.documents)))
	return nil
}

// Search computes cosine similarity against every stored document and
// returns the topK best, ordered by descending score. Deterministic: ties
// keep insertion order.
func (s *InMemoryVectorStore) Search(ctx context.Context, queryEmbedding []float64, topK int) ([]VectorSearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 || len(s.documents) == 0 {
		return []VectorSearchResult{}, nil
	}
	if s.dims != 0 && len(queryEmbedding) != s.dims {
		return nil, fmt.Errorf("query embedding dimension mismatch: got=%d want=%d",
			len(queryEmbedding), s.dims)
	}

	results := make([]VectorSearchResult, 0, len(s.documents))
	for _, doc := range s.documents {
		results = append(results, VectorSearchResult{
			Document: doc,
			Score:    cosineSimilarity(queryEmbedding, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// Count returns the stored document count.
func (s *InMemoryVectorStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents), nil
}

// RecreateCollection clears the store and pins the vector size.
func (s *InMemoryVectorStore) RecreateCollection(ctx context.Context, vectorSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make([]Document, 0)
	s.dims = vectorSize
	return nil
}

// CollectionExists always reports true for the in-memory store.
func (s *InMemoryVectorStore) CollectionExists(ctx context.Context) (bool, error) {
	return true, nil
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
