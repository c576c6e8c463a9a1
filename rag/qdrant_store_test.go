package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimelsayad/bookrag/types"
)

// fakeQdrant is a minimal in-process stand-in for the Qdrant REST API,
// covering the endpoints the store uses.
type fakeQdrant struct {
	mu          sync.Mutex
	collections map[string]int // name -> vector size
	points      map[string][]qdrantPoint
	apiKey      string
}

func newFakeQdrant() *fakeQdrant {
	return &fakeQdrant{
		collections: make(map[string]int),
		points:      make(map[string][]qdrantPoint),
	}
}

func (f *fakeQdrant) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /collections/{name}/exists", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		f.mu.Lock()
		_, exists := f.collections[r.PathValue("name")]
		f.mu.Unlock()
		writeQdrantResult(w, map[string]any{"exists": exists})
	})

	mux.HandleFunc("PUT /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		var body struct {
			Vectors struct {
				Size     int    `json:"size"`
				Distance string `json:"distance"`
			} `json:"vectors"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Vectors.Size <= 0 {
			http.Error(w, "bad create request", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.collections[r.PathValue("name")] = body.Vectors.Size
		f.points[r.PathValue("name")] = nil
		f.mu.Unlock()
		writeQdrantResult(w, true)
	})

	mux.HandleFunc("DELETE /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		f.mu.Lock()
		delete(f.collections, r.PathValue("name"))
		delete(f.points, r.PathValue("name"))
		f.mu.Unlock()
		writeQdrantResult(w, true)
	})

	mux.HandleFunc("PUT /collections/{name}/points", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		name := r.PathValue("name")
		f.mu.Lock()
		_, exists := f.collections[name]
		f.mu.Unlock()
		if !exists {
			http.Error(w, `{"status":{"error":"collection not found"}}`, http.StatusNotFound)
			return
		}
		var body struct {
			Points []qdrantPoint `json:"points"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad upsert request", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.points[name] = append(f.points[name], body.Points...)
		f.mu.Unlock()
		writeQdrantResult(w, map[string]any{"status": "completed"})
	})

	mux.HandleFunc("POST /collections/{name}/points/search", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		var body struct {
			Vector []float64 `json:"vector"`
			Limit  int       `json:"limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad search request", http.StatusBadRequest)
			return
		}

		type hit struct {
			ID      string         `json:"id"`
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		}
		f.mu.Lock()
		stored := f.points[r.PathValue("name")]
		f.mu.Unlock()

		hits := make([]hit, 0, len(stored))
		for _, p := range stored {
			hits = append(hits, hit{
				ID:      p.ID,
				Score:   cosineSimilarity(body.Vector, p.Vector),
				Payload: p.Payload,
			})
		}
		for i := 0; i < len(hits); i++ {
			for j := i + 1; j < len(hits); j++ {
				if hits[j].Score > hits[i].Score {
					hits[i], hits[j] = hits[j], hits[i]
				}
			}
		}
		if body.Limit < len(hits) {
			hits = hits[:body.Limit]
		}
		writeQdrantResult(w, hits)
	})

	mux.HandleFunc("POST /collections/{name}/points/count", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(w, r) {
			return
		}
		f.mu.Lock()
		n := len(f.points[r.PathValue("name")])
		f.mu.Unlock()
		writeQdrantResult(w, map[string]any{"count": n})
	})

	return mux
}

func (f *fakeQdrant) authorized(w http.ResponseWriter, r *http.Request) bool {
	if f.apiKey != "" && r.Header.Get("api-key") != f.apiKey {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeQdrantResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"result": result,
	})
}

func newTestQdrantStore(t *testing.T, fake *fakeQdrant, apiKey string) *QdrantStore {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewQdrantStore(QdrantConfig{
		BaseURL:    srv.URL,
		APIKey:     apiKey,
		Collection: "school_books",
	}, nil)
}

func TestQdrantStore_RoundTrip(t *testing.T) {
	t.Parallel()

	fake := newFakeQdrant()
	store := newTestQdrantStore(t, fake, "")
	ctx := context.Background()

	exists, err := store.CollectionExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.RecreateCollection(ctx, 3))

	exists, err = store.CollectionExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	docs := []Document{
		{
			ID:        "dist.pdf:p7:c0",
			Content:   "The CAP theorem limits distributed systems.",
			Metadata:  map[string]any{MetaSourceFile: "dist.pdf", MetaPage: 7},
			Embedding: []float64{1, 0, 0},
		},
		{
			ID:        "bio.pdf:p2:c0",
			Content:   "Photosynthesis happens in chloroplasts.",
			Metadata:  map[string]any{MetaSourceFile: "bio.pdf", MetaPage: 2},
			Embedding: []float64{0, 1, 0},
		},
	}
	require.NoError(t, store.AddDocuments(ctx, docs))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	results, err := store.Search(ctx, []float64{0.9, 0.1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "dist.pdf:p7:c0", results[0].Document.ID)
	assert.Equal(t, "The CAP theorem limits distributed systems.", results[0].Document.Content)
	assert.Equal(t, "dist.pdf", results[0].Document.SourceFile())
	assert.Equal(t, 7, results[0].Document.Page())
	assert.Positive(t, results[0].Score)
}

func TestQdrantStore_RecreateDropsExisting(t *testing.T) {
	t.Parallel()

	fake := newFakeQdrant()
	store := newTestQdrantStore(t, fake, "")
	ctx := context.Background()

	require.NoError(t, store.RecreateCollection(ctx, 2))
	require.NoError(t, store.AddDocuments(ctx, []Document{
		{ID: "a", Content: "x", Embedding: []float64{1, 0}},
	}))

	require.NoError(t, store.RecreateCollection(ctx, 2))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQdrantStore_APIKeyHeader(t *testing.T) {
	t.Parallel()

	fake := newFakeQdrant()
	fake.apiKey = "secret"
	ctx := context.Background()

	unauthorized := newTestQdrantStore(t, fake, "")
	_, err := unauthorized.CollectionExists(ctx)
	require.Error(t, err)
	assert.Equal(t, types.ErrRetrievalUnavailable, types.GetErrorCode(err))

	authorized := newTestQdrantStore(t, fake, "secret")
	_, err = authorized.CollectionExists(ctx)
	require.NoError(t, err)
}

func TestQdrantStore_UnreachableMapsToRetrievalUnavailable(t *testing.T) {
	t.Parallel()

	store := NewQdrantStore(QdrantConfig{
		BaseURL:    "http://127.0.0.1:1",
		Collection: "school_books",
	}, nil)

	_, err := store.Search(context.Background(), []float64{1, 0}, 5)
	require.Error(t, err)
	assert.Equal(t, types.ErrRetrievalUnavailable, types.GetErrorCode(err))
}

func TestQdrantStore_Validation(t *testing.T) {
	t.Parallel()

	fake := newFakeQdrant()
	store := newTestQdrantStore(t, fake, "")
	ctx := context.Background()

	require.NoError(t, store.RecreateCollection(ctx, 2))

	err := store.AddDocuments(ctx, []Document{{ID: "", Embedding: []float64{1, 0}}})
	require.Error(t, err)

	err = store.AddDocuments(ctx, []Document{
		{ID: "a", Embedding: []float64{1, 0}},
		{ID: "b", Embedding: []float64{1, 0, 0}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")

	_, err = store.Search(ctx, nil, 5)
	require.Error(t, err)

	results, err := store.Search(ctx, []float64{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	require.NoError(t, store.AddDocuments(ctx, nil))
}

func TestQdrantPointID_Stable(t *testing.T) {
	t.Parallel()

	a := qdrantPointID("dist.pdf:p7:c0")
	b := qdrantPointID("dist.pdf:p7:c0")
	c := qdrantPointID("dist.pdf:p7:c1")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}
