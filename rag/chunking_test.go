package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDocumentChunker_ShortDocument(t *testing.T) {
	t.Parallel()

	chunker := NewDocumentChunker(DefaultChunkingConfig(), nil, nil)
	doc := Document{
		Content:  "A short paragraph about the CAP theorem and its trade-offs.",
		Metadata: map[string]any{MetaSourceFile: "dist.pdf", MetaPage: 4},
	}

	chunks := chunker.ChunkDocument(doc)
	require.Len(t, chunks, 1)
	assert.Equal(t, doc.Content, chunks[0].Content)
	assert.Equal(t, "dist.pdf", chunks[0].Metadata[MetaSourceFile])
	assert.Equal(t, 4, chunks[0].Metadata[MetaPage])
	assert.Positive(t, chunks[0].TokenCount)
}

func TestDocumentChunker_SplitsOnParagraphs(t *testing.T) {
	t.Parallel()

	cfg := ChunkingConfig{ChunkSize: 100, ChunkOverlap: 20, MinChunkSize: 5}
	chunker := NewDocumentChunker(cfg, nil, nil)

	para := strings.Repeat("word ", 15) // ~75 chars
	doc := Document{Content: para + "\n\n" + para + "\n\n" + para}

	chunks := chunker.ChunkDocument(doc)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.Content), cfg.ChunkSize)
	}
}

func TestDocumentChunker_DropsTinyFragments(t *testing.T) {
	t.Parallel()

	cfg := ChunkingConfig{ChunkSize: 50, ChunkOverlap: 0, MinChunkSize: 30}
	chunker := NewDocumentChunker(cfg, nil, nil)

	chunks := chunker.ChunkDocument(Document{Content: "tiny"})
	assert.Empty(t, chunks)
}

func TestDocumentChunker_MetadataIsCopied(t *testing.T) {
	t.Parallel()

	chunker := NewDocumentChunker(ChunkingConfig{ChunkSize: 40, ChunkOverlap: 5, MinChunkSize: 1}, nil, nil)
	doc := Document{
		Content:  strings.Repeat("alpha beta gamma delta. ", 10),
		Metadata: map[string]any{MetaSourceFile: "x.pdf", MetaPage: 1},
	}

	chunks := chunker.ChunkDocument(doc)
	require.Greater(t, len(chunks), 1)

	// Mutating one chunk's metadata must not leak into siblings.
	chunks[0].Metadata[MetaPage] = 99
	assert.Equal(t, 1, chunks[1].Metadata[MetaPage])
}

func TestChunkID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "book.pdf:p3:c0", ChunkID("book.pdf", 3, 0))
	assert.NotEqual(t, ChunkID("a.pdf", 1, 0), ChunkID("a.pdf", 1, 1))
}

// Property: chunking never produces oversized chunks, never loses more than
// boundary trimming, and always terminates.
func TestDocumentChunker_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(40, 400).Draw(rt, "size")
		overlap := rapid.IntRange(0, 30).Draw(rt, "overlap")
		words := rapid.SliceOfN(
			rapid.StringMatching(`[a-z]{1,12}`), 0, 400,
		).Draw(rt, "words")

		cfg := ChunkingConfig{ChunkSize: size, ChunkOverlap: overlap, MinChunkSize: 1}
		chunker := NewDocumentChunker(cfg, nil, nil)

		content := strings.Join(words, " ")
		chunks := chunker.ChunkDocument(Document{Content: content})

		for _, c := range chunks {
			if len(c.Content) > size {
				rt.Fatalf("chunk of %d chars exceeds budget %d", len(c.Content), size)
			}
			if strings.TrimSpace(c.Content) == "" {
				rt.Fatalf("empty chunk produced")
			}
		}
	})
}
