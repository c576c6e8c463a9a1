// Package mocks provides test doubles for the LLM provider, the embedding
// provider and the knowledge retriever. All mocks record their calls and are
// safe for concurrent use.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

// Reply is one scripted provider response: text content, tool calls, or an
// error.
type Reply struct {
	Content   string
	ToolCalls []types.ToolCall
	Err       error
}

// TextReply scripts a plain text completion.
func TextReply(content string) Reply {
	return Reply{Content: content}
}

// ToolCallReply scripts a completion that invokes a tool.
func ToolCallReply(id, name, arguments string) Reply {
	return Reply{ToolCalls: []types.ToolCall{
		{ID: id, Name: name, Arguments: []byte(arguments)},
	}}
}

// ErrorReply scripts a failed completion.
func ErrorReply(err error) Reply {
	return Reply{Err: err}
}

// Provider is a scripted llm.Provider. Replies are consumed in order; the
// last reply repeats once the script runs out.
type Provider struct {
	mu      sync.Mutex
	script  []Reply
	nextIdx int
	calls   []*llm.ChatRequest
}

// NewProvider creates a Provider that plays back the given replies.
func NewProvider(script ...Reply) *Provider {
	return &Provider{script: script}
}

// Enqueue appends replies to the script.
func (p *Provider) Enqueue(replies ...Reply) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, replies...)
	return p
}

// Completion implements llm.Provider.
func (p *Provider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.calls = append(p.calls, req)
	if len(p.script) == 0 {
		p.mu.Unlock()
		return nil, types.NewError(types.ErrModelCallFailed, "mock provider has no scripted replies")
	}
	idx := p.nextIdx
	if idx >= len(p.script) {
		idx = len(p.script) - 1
	}
	reply := p.script[idx]
	p.nextIdx++
	p.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}

	finish := "stop"
	if len(reply.ToolCalls) > 0 {
		finish = "tool_calls"
	}
	return &llm.ChatResponse{
		ID:       "mock-response",
		Provider: "mock",
		Model:    req.Model,
		Choices: []llm.ChatChoice{{
			FinishReason: finish,
			Message: types.Message{
				Role:      types.RoleAssistant,
				Content:   reply.Content,
				ToolCalls: reply.ToolCalls,
			},
		}},
		CreatedAt: time.Now(),
	}, nil
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return "mock" }

// SupportsNativeFunctionCalling implements llm.Provider.
func (p *Provider) SupportsNativeFunctionCalling() bool { return true }

// Calls returns a copy of the recorded requests, in order.
func (p *Provider) Calls() []*llm.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*llm.ChatRequest{}, p.calls...)
}

// CallCount returns the number of Completion calls made so far.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
