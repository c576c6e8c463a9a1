package rag

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/karimelsayad/bookrag/llm/embedding"
)

// IngestConfig controls the ingestion pipeline.
type IngestConfig struct {
	Chunking ChunkingConfig `json:"chunking"`

	// BatchSize is the number of chunks embedded per request.
	BatchSize int `json:"batch_size"`

	// Concurrency bounds parallel embedding batches.
	Concurrency int `json:"concurrency"`
}

// DefaultIngestConfig returns the production defaults.
func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		Chunking:    DefaultChunkingConfig(),
		BatchSize:   100,
		Concurrency: 4,
	}
}

// IngestStats summarizes one ingestion run.
type IngestStats struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
	Tokens    int `json:"tokens"`
}

// Ingestor populates the vector collection: chunk documents, embed chunk
// batches concurrently, and upsert them with their source metadata.
type Ingestor struct {
	chunker  *DocumentChunker
	embedder embedding.Provider
	store    VectorStore
	cfg      IngestConfig
	logger   *zap.Logger
}

// NewIngestor creates an ingestion pipeline.
func NewIngestor(cfg IngestConfig, chunker *DocumentChunker, embedder embedding.Provider, store VectorStore, logger *zap.Logger) *Ingestor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		cfg:      cfg,
		logger:   logger.With(zap.String("component", "ingestor")),
	}
}

// Ingest chunks and stores the given documents. When the store manages a
// named collection it is recreated first with the embedder's dimensionality,
// so the collection's vector size always matches query embeddings.
func (in *Ingestor) Ingest(ctx context.Context, docs []Document) (IngestStats, error) {
	stats := IngestStats{Documents: len(docs)}

	chunkOrdinals := make(map[string]int)
	var chunks []Chunk
	var ids []string
	for _, doc := range docs {
		for _, chunk := range in.chunker.ChunkDocument(doc) {
			key := fmt.Sprintf("%s:%d", doc.SourceFile(), doc.Page())
			ordinal := chunkOrdinals[key]
			chunkOrdinals[key] = ordinal + 1

			ids = append(ids, ChunkID(doc.SourceFile(), doc.Page(), ordinal))
			chunks = append(chunks, chunk)
			stats.Tokens += chunk.TokenCount
		}
	}
	stats.Chunks = len(chunks)

	if len(chunks) == 0 {
		return stats, fmt.Errorf("no chunks produced from %d documents", len(docs))
	}

	if mgr, ok := in.store.(CollectionManager); ok {
		if err := mgr.RecreateCollection(ctx, in.embedder.Dimensions()); err != nil {
			return stats, err
		}
	}

	batchSize := in.cfg.BatchSize
	if batchSize > in.embedder.MaxBatchSize() {
		batchSize = in.embedder.MaxBatchSize()
	}

	// Embed batches concurrently; upserts are serialized to keep the store
	// interface simple.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.cfg.Concurrency)

	for start := 0; start < len(chunks); start += batchSize {
		start := start
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		g.Go(func() error {
			texts := make([]string, end-start)
			for i := start; i < end; i++ {
				texts[i-start] = chunks[i].Content
			}

			vectors, err := in.embedder.EmbedDocuments(gctx, texts)
			if err != nil {
				return fmt.Errorf("embed batch [%d:%d]: %w", start, end, err)
			}

			batch := make([]Document, end-start)
			for i := start; i < end; i++ {
				batch[i-start] = Document{
					ID:        ids[i],
					Content:   chunks[i].Content,
					Metadata:  chunks[i].Metadata,
					Embedding: vectors[i-start],
				}
			}

			mu.Lock()
			defer mu.Unlock()
			if err := in.store.AddDocuments(gctx, batch); err != nil {
				return fmt.Errorf("store batch [%d:%d]: %w", start, end, err)
			}

			in.logger.Info("ingested batch",
				zap.Int("from", start),
				zap.Int("to", end),
				zap.Int("total", len(chunks)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}

	in.logger.Info("ingestion completed",
		zap.Int("documents", stats.Documents),
		zap.Int("chunks", stats.Chunks),
		zap.Int("tokens", stats.Tokens))
	return stats, nil
}
