package agent

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

// Rewriter reformulates a question whose retrieval was graded irrelevant.
type Rewriter struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewRewriter creates a query rewriting step.
func NewRewriter(provider llm.Provider, model string, logger *zap.Logger) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rewriter{
		provider: provider,
		model:    model,
		logger:   logger.With(zap.String("component", "rewriter")),
	}
}

// Rewrite produces an alternative phrasing of the original question. It is
// always called with turn 0's content so successive rounds rephrase the
// student's question, not a previous rewrite.
func (r *Rewriter) Rewrite(ctx context.Context, originalQuestion string) (string, error) {
	resp, err := r.provider.Completion(ctx, &llm.ChatRequest{
		Model: r.model,
		Messages: []types.Message{
			types.NewUserMessage(RewritePrompt(originalQuestion)),
		},
	})
	if err != nil {
		return "", err
	}

	rewritten := strings.TrimSpace(llm.FirstChoiceText(resp))
	if rewritten == "" {
		return "", types.NewError(types.ErrMalformedModelOutput,
			"rewriter returned empty text")
	}

	r.logger.Debug("question rewritten", zap.String("rewritten", rewritten))
	return rewritten, nil
}
