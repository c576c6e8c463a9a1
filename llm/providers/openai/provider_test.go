package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

func TestProvider_Completion_Text(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 1)
		require.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o",
			"created": 1735689600,
			"choices": [{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Hello there"}}],
			"usage": {"prompt_tokens":5,"completion_tokens":3,"total_tokens":8}
		}`))
	}))
	defer srv.Close()

	p := New(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())

	resp, err := p.Completion(context.Background(), &llm.ChatRequest{
		Messages: []types.Message{types.NewUserMessage("hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", llm.FirstChoiceText(resp))
	assert.Equal(t, 8, resp.Usage.TotalTokens)
	assert.Equal(t, "openai", resp.Provider)
}

func TestProvider_Completion_ToolCall(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tools, 1)
		require.Equal(t, "function", req.Tools[0].Type)
		require.Equal(t, "retrieve_from_books", req.Tools[0].Function.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-2",
			"model": "gpt-4o",
			"choices": [{"index":0,"finish_reason":"tool_calls","message":{
				"role":"assistant","content":"",
				"tool_calls":[{"id":"call_abc","type":"function","function":{"name":"retrieve_from_books","arguments":"{\"query\":\"photosynthesis\"}"}}]
			}}]
		}`))
	}))
	defer srv.Close()

	p := New(Config{APIKey: "k", BaseURL: srv.URL}, zap.NewNop())

	resp, err := p.Completion(context.Background(), &llm.ChatRequest{
		Messages: []types.Message{types.NewUserMessage("what is photosynthesis?")},
		Tools: []llm.ToolSchema{{
			Name:       "retrieve_from_books",
			Parameters: json.RawMessage(`{"type":"object"}`),
		}},
	})
	require.NoError(t, err)

	call, ok := llm.FirstToolCall(resp)
	require.True(t, ok)
	assert.Equal(t, "call_abc", call.ID)
	assert.Equal(t, "retrieve_from_books", call.Name)
	assert.JSONEq(t, `{"query":"photosynthesis"}`, string(call.Arguments))
}

func TestProvider_Completion_ResponseFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		require.Equal(t, "json_schema", req.ResponseFormat.Type)
		require.Equal(t, "grade_documents", req.ResponseFormat.JSONSchema.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-3","model":"gpt-4o",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"binary_score\":\"yes\"}"}}]
		}`))
	}))
	defer srv.Close()

	p := New(Config{APIKey: "k", BaseURL: srv.URL}, zap.NewNop())

	resp, err := p.Completion(context.Background(), &llm.ChatRequest{
		Messages: []types.Message{types.NewUserMessage("grade this")},
		ResponseFormat: &llm.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &llm.JSONSchemaFormat{
				Name:   "grade_documents",
				Strict: true,
				Schema: json.RawMessage(`{"type":"object"}`),
			},
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"binary_score":"yes"}`, llm.FirstChoiceText(resp))
}

func TestProvider_Completion_UpstreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantCode  types.ErrorCode
		retryable bool
	}{
		{"rate_limited", http.StatusTooManyRequests, types.ErrModelCallFailed, true},
		{"server_error", http.StatusInternalServerError, types.ErrModelCallFailed, true},
		{"bad_request", http.StatusBadRequest, types.ErrModelCallFailed, false},
		{"gateway_timeout", http.StatusGatewayTimeout, types.ErrUpstreamTimeout, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"upstream says no"}}`))
			}))
			defer srv.Close()

			p := New(Config{APIKey: "k", BaseURL: srv.URL}, zap.NewNop())
			_, err := p.Completion(context.Background(), &llm.ChatRequest{
				Messages: []types.Message{types.NewUserMessage("hi")},
			})
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, types.GetErrorCode(err))

			var terr *types.Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.retryable, terr.Retryable)
			assert.Contains(t, terr.Message, "upstream says no")
		})
	}
}

func TestProvider_Completion_ContextCancelled(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	p := New(Config{APIKey: "k", BaseURL: srv.URL}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Completion(ctx, &llm.ChatRequest{
		Messages: []types.Message{types.NewUserMessage("hi")},
	})
	require.Error(t, err)
	assert.Equal(t, types.ErrUpstreamTimeout, types.GetErrorCode(err))
}

func TestProvider_Defaults(t *testing.T) {
	t.Parallel()

	p := New(Config{APIKey: "k"}, nil)
	assert.Equal(t, "https://api.openai.com", p.cfg.BaseURL)
	assert.Equal(t, "gpt-4o", p.cfg.Model)
	assert.True(t, p.SupportsNativeFunctionCalling())
}
