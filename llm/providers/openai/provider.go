// Package openai implements the llm.Provider interface over the OpenAI
// Chat Completions API. The deployment pins a single provider; anything
// speaking the same wire format (base URL override) works too.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

const defaultModel = "gpt-4o"

// Config holds the provider configuration.
type Config struct {
	APIKey string

	// BaseURL defaults to https://api.openai.com.
	BaseURL string

	// Model is used when the request does not name one. Defaults to gpt-4o.
	Model string

	// Organization sets the OpenAI-Organization header when non-empty.
	Organization string

	// Timeout is the HTTP client timeout. Defaults to 60s.
	Timeout time.Duration
}

// Provider implements llm.Provider against /v1/chat/completions.
type Provider struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// New creates a new OpenAI provider.
func New(cfg Config, logger *zap.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.With(zap.String("component", "openai_provider")),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return "openai" }

// SupportsNativeFunctionCalling reports native tool calling support.
func (p *Provider) SupportsNativeFunctionCalling() bool { return true }

// --- Wire types (Chat Completions) ---

type chatMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	Name       string         `json:"name,omitempty"`
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type chatToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatTool struct {
	Type     string         `json:"type"`
	Function chatToolSchema `json:"function"`
}

type chatToolSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	Temperature    float32             `json:"temperature,omitempty"`
	Tools          []chatTool          `json:"tools,omitempty"`
	ToolChoice     string              `json:"tool_choice,omitempty"`
	ResponseFormat *llm.ResponseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Created int64  `json:"created"`
	Choices []struct {
		Index        int         `json:"index"`
		FinishReason string      `json:"finish_reason"`
		Message      chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Completion performs a non-streaming chat completion.
func (p *Provider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	body := chatRequest{
		Model:          model,
		Messages:       toWireMessages(req.Messages),
		MaxTokens:      req.MaxTokens,
		Temperature:    req.Temperature,
		Tools:          toWireTools(req.Tools),
		ToolChoice:     req.ToolChoice,
		ResponseFormat: req.ResponseFormat,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, types.NewError(types.ErrInvalidRequest, "failed to encode chat request").WithCause(err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, types.NewError(types.ErrInvalidRequest, "failed to build chat request").WithCause(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.Organization != "" {
		httpReq.Header.Set("OpenAI-Organization", p.cfg.Organization)
	}

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, types.NewError(types.ErrUpstreamTimeout, "chat completion aborted").WithCause(err)
		}
		return nil, types.NewError(types.ErrModelCallFailed, "chat completion request failed").
			WithRetryable(true).WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, types.NewError(types.ErrModelCallFailed, "failed to read chat response").WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, p.mapHTTPError(resp.StatusCode, raw)
	}

	var oa chatResponse
	if err := json.Unmarshal(raw, &oa); err != nil {
		return nil, types.NewError(types.ErrModelCallFailed, "failed to decode chat response").WithCause(err)
	}
	if len(oa.Choices) == 0 {
		return nil, types.NewError(types.ErrModelCallFailed, "chat response has no choices")
	}

	out := &llm.ChatResponse{
		ID:        oa.ID,
		Provider:  p.Name(),
		Model:     oa.Model,
		Choices:   make([]llm.ChatChoice, len(oa.Choices)),
		CreatedAt: time.Unix(oa.Created, 0),
		Usage: llm.ChatUsage{
			PromptTokens:     oa.Usage.PromptTokens,
			CompletionTokens: oa.Usage.CompletionTokens,
			TotalTokens:      oa.Usage.TotalTokens,
		},
	}
	for i, c := range oa.Choices {
		out.Choices[i] = llm.ChatChoice{
			Index:        c.Index,
			FinishReason: c.FinishReason,
			Message:      fromWireMessage(c.Message),
		}
	}

	p.logger.Debug("chat completion",
		zap.String("model", model),
		zap.Int("total_tokens", out.Usage.TotalTokens),
		zap.Duration("duration", time.Since(start)))

	return out, nil
}

func (p *Provider) mapHTTPError(status int, raw []byte) *types.Error {
	msg := readErrorMessage(raw)

	switch {
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return types.NewError(types.ErrUpstreamTimeout, msg).WithHTTPStatus(status).WithRetryable(true)
	case status == http.StatusTooManyRequests:
		return types.NewError(types.ErrModelCallFailed, msg).WithHTTPStatus(status).WithRetryable(true)
	case status >= 500:
		return types.NewError(types.ErrModelCallFailed, msg).WithHTTPStatus(status).WithRetryable(true)
	default:
		return types.NewError(types.ErrModelCallFailed, msg).WithHTTPStatus(status)
	}
}

func readErrorMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		s = "upstream error"
	}
	return fmt.Sprintf("openai: %s", s)
}

// --- Conversions ---

func toWireMessages(msgs []types.Message) []chatMessage {
	out := make([]chatMessage, len(msgs))
	for i, m := range msgs {
		wm := chatMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			Name:       m.Name,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			wm.ToolCalls = append(wm.ToolCalls, chatToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: chatFunction{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		out[i] = wm
	}
	return out
}

func toWireTools(tools []llm.ToolSchema) []chatTool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]chatTool, len(tools))
	for i, t := range tools {
		out[i] = chatTool{
			Type: "function",
			Function: chatToolSchema{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromWireMessage(m chatMessage) types.Message {
	msg := types.Message{
		Role:       types.Role(m.Role),
		Content:    m.Content,
		Name:       m.Name,
		ToolCallID: m.ToolCallID,
	}
	for _, tc := range m.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, types.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return msg
}
