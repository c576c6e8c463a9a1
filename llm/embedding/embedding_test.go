package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimelsayad/bookrag/types"
)

func newFakeOpenAI(t *testing.T, dims int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/embeddings", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openAIEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		data := make([]map[string]any, len(req.Input))
		for i := range req.Input {
			vec := make([]float64, dims)
			vec[0] = float64(i + 1)
			data[i] = map[string]any{"index": i, "embedding": vec}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  data,
			"model": req.Model,
			"usage": map[string]int{"prompt_tokens": 4, "total_tokens": 4},
		})
	}))
}

func TestOpenAIProvider_EmbedQuery(t *testing.T) {
	t.Parallel()

	srv := newFakeOpenAI(t, 1536)
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})

	vec, err := p.EmbedQuery(context.Background(), "what is the CAP theorem?")
	require.NoError(t, err)
	assert.Len(t, vec, 1536)
	assert.Equal(t, 1536, p.Dimensions())
}

func TestOpenAIProvider_EmbedDocuments(t *testing.T) {
	t.Parallel()

	srv := newFakeOpenAI(t, 8)
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Dimensions: 8})

	vecs, err := p.EmbedDocuments(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	// Order is preserved by index.
	assert.Equal(t, 1.0, vecs[0][0])
	assert.Equal(t, 2.0, vecs[1][0])
	assert.Equal(t, 3.0, vecs[2][0])
}

func TestOpenAIProvider_EmptyInput(t *testing.T) {
	t.Parallel()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})
	_, err := p.Embed(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidRequest, types.GetErrorCode(err))
}

func TestOpenAIProvider_CountMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[0.1]}],"model":"m","usage":{}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := p.Embed(context.Background(), &Request{Input: []string{"a", "b"}})
	require.Error(t, err)
	assert.Equal(t, types.ErrModelCallFailed, types.GetErrorCode(err))
}

func TestOpenAIProvider_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "overloaded")
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := p.EmbedQuery(context.Background(), "q")
	require.Error(t, err)

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.Retryable)
	assert.Equal(t, types.ErrModelCallFailed, terr.Code)
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	t.Parallel()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})
	assert.Equal(t, "text-embedding-3-small", p.cfg.Model)
	assert.Equal(t, 1536, p.Dimensions())
	assert.Equal(t, 2048, p.MaxBatchSize())
}
