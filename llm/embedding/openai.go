package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karimelsayad/bookrag/types"
)

// OpenAIConfig configures the OpenAI embedding provider.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // defaults to https://api.openai.com

	// Model defaults to text-embedding-3-small (1536 dimensions), matching
	// the ingestion deployment.
	Model      string
	Dimensions int
	Timeout    time.Duration
}

// OpenAIProvider implements Provider using OpenAI's embeddings API.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAIProvider creates a new OpenAI embedding provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-3-small"
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = 1536
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &OpenAIProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *OpenAIProvider) Name() string      { return "openai-embedding" }
func (p *OpenAIProvider) Dimensions() int   { return p.cfg.Dimensions }
func (p *OpenAIProvider) MaxBatchSize() int { return 2048 }

type openAIEmbedRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type openAIEmbedResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// Embed generates embeddings for the given inputs.
func (p *OpenAIProvider) Embed(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Input) == 0 {
		return nil, types.NewError(types.ErrInvalidRequest, "embedding input is empty")
	}
	if len(req.Input) > p.MaxBatchSize() {
		return nil, types.NewError(types.ErrInvalidRequest,
			fmt.Sprintf("embedding batch of %d exceeds max %d", len(req.Input), p.MaxBatchSize()))
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	raw, err := p.doRequest(ctx, openAIEmbedRequest{Input: req.Input, Model: model})
	if err != nil {
		return nil, err
	}

	var oa openAIEmbedResponse
	if err := json.Unmarshal(raw, &oa); err != nil {
		return nil, types.NewError(types.ErrModelCallFailed, "failed to decode embedding response").WithCause(err)
	}
	if len(oa.Data) != len(req.Input) {
		return nil, types.NewError(types.ErrModelCallFailed,
			fmt.Sprintf("embedding count mismatch: got %d for %d inputs", len(oa.Data), len(req.Input)))
	}

	out := &Response{
		Provider:   p.Name(),
		Model:      oa.Model,
		Embeddings: make([]Data, len(oa.Data)),
		Usage: Usage{
			PromptTokens: oa.Usage.PromptTokens,
			TotalTokens:  oa.Usage.TotalTokens,
		},
	}
	for i, d := range oa.Data {
		out.Embeddings[i] = Data{Index: d.Index, Embedding: d.Embedding}
	}
	return out, nil
}

// EmbedQuery embeds a single query string.
func (p *OpenAIProvider) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	resp, err := p.Embed(ctx, &Request{Input: []string{query}})
	if err != nil {
		return nil, err
	}
	return resp.Embeddings[0].Embedding, nil
}

// EmbedDocuments embeds multiple documents.
func (p *OpenAIProvider) EmbedDocuments(ctx context.Context, documents []string) ([][]float64, error) {
	resp, err := p.Embed(ctx, &Request{Input: documents})
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		out[i] = e.Embedding
	}
	return out, nil
}

func (p *OpenAIProvider) doRequest(ctx context.Context, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, types.NewError(types.ErrInvalidRequest, "failed to encode embedding request").WithCause(err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/v1/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, types.NewError(types.ErrInvalidRequest, "failed to build embedding request").WithCause(err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, types.NewError(types.ErrModelCallFailed, "embedding request failed").
			WithRetryable(true).WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, types.NewError(types.ErrModelCallFailed, "failed to read embedding response").WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		e := types.NewError(types.ErrModelCallFailed,
			fmt.Sprintf("embedding request failed: status=%d body=%s", resp.StatusCode, msg)).
			WithHTTPStatus(resp.StatusCode)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			e = e.WithRetryable(true)
		}
		return nil, e
	}
	return raw, nil
}
