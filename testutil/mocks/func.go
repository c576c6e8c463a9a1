package mocks

import (
	"context"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/rag"
	"github.com/karimelsayad/bookrag/types"
)

// ProviderFunc adapts a function to llm.Provider, for tests whose replies
// depend on the request rather than on call order.
type ProviderFunc func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)

// Completion implements llm.Provider.
func (f ProviderFunc) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	return f(ctx, req)
}

// Name implements llm.Provider.
func (f ProviderFunc) Name() string { return "mock-func" }

// SupportsNativeFunctionCalling implements llm.Provider.
func (f ProviderFunc) SupportsNativeFunctionCalling() bool { return true }

// TextResponse builds a single-choice text response, the shape ProviderFunc
// implementations usually return.
func TextResponse(content string) *llm.ChatResponse {
	return &llm.ChatResponse{
		Provider: "mock-func",
		Choices: []llm.ChatChoice{{
			FinishReason: "stop",
			Message:      types.NewAssistantMessage(content),
		}},
	}
}

// ToolCallResponse builds a single-choice response invoking a tool.
func ToolCallResponse(id, name, arguments string) *llm.ChatResponse {
	return &llm.ChatResponse{
		Provider: "mock-func",
		Choices: []llm.ChatChoice{{
			FinishReason: "tool_calls",
			Message: types.NewAssistantMessage("").WithToolCalls([]types.ToolCall{
				{ID: id, Name: name, Arguments: []byte(arguments)},
			}),
		}},
	}
}

// RetrieverFunc adapts a function to the agent's retriever contract.
type RetrieverFunc func(ctx context.Context, query string, k int) ([]rag.Passage, error)

// Retrieve implements the retriever contract.
func (f RetrieverFunc) Retrieve(ctx context.Context, query string, k int) ([]rag.Passage, error) {
	return f(ctx, query, k)
}
