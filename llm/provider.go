// Package llm defines the unified chat completion interface consumed by the
// RAG pipeline. Tool calls are passed through ChatRequest.Tools; the model
// answers with ToolCalls on the assistant message and the caller decides what
// to execute.
package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karimelsayad/bookrag/types"
)

// ToolSchema defines a tool's interface for LLM function calling.
type ToolSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"` // JSON Schema
}

// JSONSchemaFormat constrains structured output to a named JSON schema.
type JSONSchemaFormat struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict,omitempty"`
	Schema json.RawMessage `json:"schema"`
}

// ResponseFormat requests a constrained output shape from the model.
// Type is "text" (default) or "json_schema".
type ResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *JSONSchemaFormat `json:"json_schema,omitempty"`
}

// ChatRequest is a provider-agnostic chat completion request.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []types.Message `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float32         `json:"temperature,omitempty"`
	Tools          []ToolSchema    `json:"tools,omitempty"`
	ToolChoice     string          `json:"tool_choice,omitempty"` // auto/none/<tool name>
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Timeout        time.Duration   `json:"timeout,omitempty"`
}

// ChatUsage reports token accounting for a completion.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatChoice is a single completion candidate.
type ChatChoice struct {
	Index        int           `json:"index"`
	FinishReason string        `json:"finish_reason,omitempty"`
	Message      types.Message `json:"message"`
}

// ChatResponse is a provider-agnostic chat completion response.
type ChatResponse struct {
	ID        string       `json:"id,omitempty"`
	Provider  string       `json:"provider,omitempty"`
	Model     string       `json:"model"`
	Choices   []ChatChoice `json:"choices"`
	Usage     ChatUsage    `json:"usage,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

// Provider is the unified LLM adapter interface.
type Provider interface {
	// Completion performs a synchronous chat request and returns the full
	// response. The call must respect ctx cancellation: a caller disconnect
	// aborts the in-flight HTTP request.
	Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Name returns the provider's unique identifier.
	Name() string

	// SupportsNativeFunctionCalling reports whether the provider handles
	// ChatRequest.Tools natively. The routing step requires native tool
	// calling; there is no fallback protocol.
	SupportsNativeFunctionCalling() bool
}
