package rag

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ChunkingConfig controls how page text is split before embedding.
type ChunkingConfig struct {
	// ChunkSize is the target chunk length in characters.
	ChunkSize int `json:"chunk_size"`
	// ChunkOverlap is the number of trailing characters repeated at the
	// start of the next chunk.
	ChunkOverlap int `json:"chunk_overlap"`
	// MinChunkSize drops fragments shorter than this.
	MinChunkSize int `json:"min_chunk_size"`
}

// DefaultChunkingConfig matches the ingestion deployment: 1000-character
// chunks with 200 characters of overlap.
func DefaultChunkingConfig() ChunkingConfig {
	return ChunkingConfig{
		ChunkSize:    1000,
		ChunkOverlap: 200,
		MinChunkSize: 20,
	}
}

// Chunk is one split of a document, ready for embedding.
type Chunk struct {
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata"`
	TokenCount int            `json:"token_count"`
}

// Tokenizer counts tokens for chunk accounting.
type Tokenizer interface {
	CountTokens(text string) int
}

// separators are tried in order: paragraph, line, sentence, word.
var separators = []string{"\n\n", "\n", ". ", " "}

// DocumentChunker splits documents on semantic-ish boundaries.
type DocumentChunker struct {
	config    ChunkingConfig
	tokenizer Tokenizer
	logger    *zap.Logger
}

// NewDocumentChunker creates a chunker. tokenizer may be nil, in which case
// token counts are estimated.
func NewDocumentChunker(config ChunkingConfig, tokenizer Tokenizer, logger *zap.Logger) *DocumentChunker {
	if config.ChunkSize <= 0 {
		config = DefaultChunkingConfig()
	}
	if config.ChunkOverlap >= config.ChunkSize {
		config.ChunkOverlap = config.ChunkSize / 5
	}
	if tokenizer == nil {
		tokenizer = estimateTokenizer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentChunker{config: config, tokenizer: tokenizer, logger: logger}
}

// ChunkDocument splits a document's content, carrying its metadata onto
// every chunk.
func (c *DocumentChunker) ChunkDocument(doc Document) []Chunk {
	pieces := c.split(strings.TrimSpace(doc.Content))

	chunks := make([]Chunk, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if len(piece) < c.config.MinChunkSize {
			continue
		}
		meta := make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			meta[k] = v
		}
		chunks = append(chunks, Chunk{
			Content:    piece,
			Metadata:   meta,
			TokenCount: c.tokenizer.CountTokens(piece),
		})
	}

	c.logger.Debug("document chunked",
		zap.String("source", doc.SourceFile()),
		zap.Int("page", doc.Page()),
		zap.Int("chunks", len(chunks)))
	return chunks
}

// split breaks text into pieces no longer than ChunkSize, preferring the
// earliest separator that yields a boundary past half the budget, and
// repeating ChunkOverlap characters between consecutive pieces.
func (c *DocumentChunker) split(text string) []string {
	size := c.config.ChunkSize
	if len(text) <= size {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var pieces []string
	for len(text) > size {
		cut := c.findBoundary(text, size)
		pieces = append(pieces, text[:cut])

		next := cut - c.config.ChunkOverlap
		if next <= 0 {
			next = cut
		}
		text = text[next:]
	}
	if strings.TrimSpace(text) != "" {
		pieces = append(pieces, text)
	}
	return pieces
}

// findBoundary returns the cut position at or before limit, preferring
// separator boundaries in the second half of the window.
func (c *DocumentChunker) findBoundary(text string, limit int) int {
	window := text[:limit]
	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx > limit/2 {
			return idx + len(sep)
		}
	}
	return limit
}

// ChunkID derives a stable identity for a chunk from its source, page, and
// ordinal, so re-ingesting the same corpus upserts instead of duplicating.
func ChunkID(source string, page, ordinal int) string {
	return fmt.Sprintf("%s:p%d:c%d", source, page, ordinal)
}

// estimateTokenizer approximates 4 characters per token.
type estimateTokenizer struct{}

func (estimateTokenizer) CountTokens(text string) int { return len(text) / 4 }
