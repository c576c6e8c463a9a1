package agent

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

// Generator synthesizes the final answer from the question and the accepted
// context. The answer is returned verbatim; no post-processing.
type Generator struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewGenerator creates an answer generation step.
func NewGenerator(provider llm.Provider, model string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		provider: provider,
		model:    model,
		logger:   logger.With(zap.String("component", "generator")),
	}
}

// Generate produces an answer grounded in the supplied context.
func (g *Generator) Generate(ctx context.Context, question, contextText string) (string, error) {
	return g.complete(ctx, GeneratePrompt(question, contextText))
}

// GenerateLowConfidence produces a best-effort answer after the rewrite
// budget is exhausted. The prompt instructs the model to state up front that
// the books do not cover the topic well.
func (g *Generator) GenerateLowConfidence(ctx context.Context, question, contextText string) (string, error) {
	return g.complete(ctx, LowConfidencePrompt(question, contextText))
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.provider.Completion(ctx, &llm.ChatRequest{
		Model: g.model,
		Messages: []types.Message{
			types.NewUserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(llm.FirstChoiceText(resp))
	if answer == "" {
		return "", types.NewError(types.ErrMalformedModelOutput,
			"generator returned empty text")
	}

	g.logger.Debug("answer generated", zap.Int("chars", len(answer)))
	return answer, nil
}
