// Package embedding provides the embedding provider interface and the
// OpenAI implementation used at both ingestion and query time. The same
// provider instance must serve both so query vectors match the collection's
// dimensionality.
package embedding

import "context"

// Request represents an embedding generation request.
type Request struct {
	Input []string `json:"input"`           // Text inputs to embed
	Model string   `json:"model,omitempty"` // Model override
}

// Data represents a single embedding result.
type Data struct {
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// Usage reports token usage for an embedding request.
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response represents the response to an embedding request.
type Response struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Embeddings []Data `json:"embeddings"`
	Usage      Usage  `json:"usage"`
}

// Provider is the unified embedding provider interface.
type Provider interface {
	// Embed generates embeddings for the given inputs.
	Embed(ctx context.Context, req *Request) (*Response, error)

	// EmbedQuery is a convenience method embedding a single query.
	EmbedQuery(ctx context.Context, query string) ([]float64, error)

	// EmbedDocuments is a convenience method embedding multiple documents.
	EmbedDocuments(ctx context.Context, documents []string) ([][]float64, error)

	// Name returns the provider name.
	Name() string

	// Dimensions returns the embedding dimensionality. Fixed per deployment;
	// the vector collection is created with this size.
	Dimensions() int

	// MaxBatchSize returns the largest supported input batch.
	MaxBatchSize() int
}
