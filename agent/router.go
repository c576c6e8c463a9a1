package agent

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

// RetrieverToolName is the tool the routing model invokes to request
// retrieval.
const RetrieverToolName = "retrieve_from_books"

var retrieverToolSchema = llm.ToolSchema{
	Name:        RetrieverToolName,
	Description: "Search and return information from school books (math, science, etc.).",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "The search query to run against the school books."
			}
		},
		"required": ["query"]
	}`),
}

// Router asks the model whether to retrieve or respond directly and returns
// the decision as a tagged value, never inferred downstream from output
// shape.
type Router struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewRouter creates a routing step. The provider must support native
// function calling.
func NewRouter(provider llm.Provider, model string, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		provider: provider,
		model:    model,
		logger:   logger.With(zap.String("component", "router")),
	}
}

// Route presents the conversation plus the retrieval tool to the model and
// converts the reply into a RouteDecision.
func (r *Router) Route(ctx context.Context, turns []types.Message) (RouteDecision, error) {
	messages := make([]types.Message, 0, len(turns)+1)
	messages = append(messages, types.NewSystemMessage(routerSystemPrompt))
	messages = append(messages, turns...)

	resp, err := r.provider.Completion(ctx, &llm.ChatRequest{
		Model:      r.model,
		Messages:   messages,
		Tools:      []llm.ToolSchema{retrieverToolSchema},
		ToolChoice: "auto",
	})
	if err != nil {
		return RouteDecision{}, err
	}

	call, ok := llm.FirstToolCall(resp)
	if !ok {
		answer := strings.TrimSpace(llm.FirstChoiceText(resp))
		if answer == "" {
			return RouteDecision{}, types.NewError(types.ErrMalformedModelOutput,
				"routing model returned neither a tool call nor text")
		}
		r.logger.Debug("routing decision", zap.String("action", string(RouteDirect)))
		return RouteDecision{Kind: RouteDirect, Answer: answer}, nil
	}

	if call.Name != RetrieverToolName {
		return RouteDecision{}, types.NewError(types.ErrMalformedModelOutput,
			"routing model called unknown tool: "+call.Name)
	}

	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return RouteDecision{}, types.NewError(types.ErrMalformedModelOutput,
			"retrieval tool arguments are not valid JSON").WithCause(err)
	}
	if strings.TrimSpace(args.Query) == "" {
		return RouteDecision{}, types.NewError(types.ErrMalformedModelOutput,
			"retrieval tool arguments are missing the query")
	}

	r.logger.Debug("routing decision",
		zap.String("action", string(RouteRetrieve)),
		zap.String("query", args.Query))
	return RouteDecision{Kind: RouteRetrieve, Query: args.Query, ToolCall: call}, nil
}
