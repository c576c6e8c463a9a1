package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimelsayad/bookrag/llm/embedding"
	"github.com/karimelsayad/bookrag/types"
)

// fakeEmbedder maps known strings to fixed vectors. Anything else embeds to
// the zero-ish fallback vector.
type fakeEmbedder struct {
	dims    int
	vectors map[string][]float64
	err     error
	queries []string
}

func (f *fakeEmbedder) Embed(_ context.Context, req *embedding.Request) (*embedding.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	resp := &embedding.Response{Provider: "fake", Model: "fake-embed"}
	for i, input := range req.Input {
		resp.Embeddings = append(resp.Embeddings, embedding.Data{
			Index:     i,
			Embedding: f.vectorFor(input),
		})
	}
	return resp, nil
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.vectorFor(query), nil
}

func (f *fakeEmbedder) EmbedDocuments(ctx context.Context, documents []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(documents))
	for i, d := range documents {
		out[i] = f.vectorFor(d)
	}
	return out, nil
}

func (f *fakeEmbedder) Name() string      { return "fake" }
func (f *fakeEmbedder) Dimensions() int   { return f.dims }
func (f *fakeEmbedder) MaxBatchSize() int { return 16 }

func (f *fakeEmbedder) vectorFor(text string) []float64 {
	if v, ok := f.vectors[text]; ok {
		return v
	}
	v := make([]float64, f.dims)
	v[f.dims-1] = 1
	return v
}

func TestRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	embedder := &fakeEmbedder{
		dims: 3,
		vectors: map[string][]float64{
			"what is the CAP theorem?": {1, 0, 0},
		},
	}
	store := NewInMemoryVectorStore(nil)
	ctx := context.Background()

	require.NoError(t, store.AddDocuments(ctx, []Document{
		{
			ID:        "dist.pdf:p7:c0",
			Content:   strings.Repeat("Consistency, availability, partition tolerance. ", 8),
			Metadata:  map[string]any{MetaSourceFile: "dist.pdf", MetaPage: 7},
			Embedding: []float64{0.95, 0.05, 0},
		},
		{
			ID:        "bio.pdf:p2:c0",
			Content:   "Photosynthesis converts light into chemical energy.",
			Metadata:  map[string]any{MetaSourceFile: "bio.pdf", MetaPage: 2},
			Embedding: []float64{0, 1, 0},
		},
	}))

	r := NewRetriever(embedder, store, nil)
	passages, err := r.Retrieve(ctx, "what is the CAP theorem?", 2)
	require.NoError(t, err)
	require.Len(t, passages, 2)

	assert.Equal(t, "dist.pdf", passages[0].Source)
	assert.Equal(t, 7, passages[0].Page)
	assert.True(t, strings.HasSuffix(passages[0].Preview, "..."))
	assert.Greater(t, passages[0].Score, passages[1].Score)
	assert.Equal(t, []string{"what is the CAP theorem?"}, embedder.queries)
}

func TestRetriever_DefaultK(t *testing.T) {
	t.Parallel()

	embedder := &fakeEmbedder{dims: 2}
	store := NewInMemoryVectorStore(nil)
	ctx := context.Background()

	docs := make([]Document, 8)
	for i := range docs {
		docs[i] = Document{
			ID:        ChunkID("book.pdf", 1, i),
			Content:   "passage",
			Embedding: []float64{1, float64(i) / 10},
		}
	}
	require.NoError(t, store.AddDocuments(ctx, docs))

	r := NewRetriever(embedder, store, nil)
	passages, err := r.Retrieve(ctx, "anything", 0)
	require.NoError(t, err)
	assert.Len(t, passages, DefaultTopK)
}

func TestRetriever_EmbedderError(t *testing.T) {
	t.Parallel()

	wantErr := types.NewError(types.ErrModelCallFailed, "embedding failed")
	embedder := &fakeEmbedder{dims: 2, err: wantErr}
	r := NewRetriever(embedder, NewInMemoryVectorStore(nil), nil)

	_, err := r.Retrieve(context.Background(), "q", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr) || types.GetErrorCode(err) == types.ErrModelCallFailed)
}

func TestRetriever_EmptyCollection(t *testing.T) {
	t.Parallel()

	embedder := &fakeEmbedder{dims: 2}
	r := NewRetriever(embedder, NewInMemoryVectorStore(nil), nil)

	passages, err := r.Retrieve(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Empty(t, passages)
}
