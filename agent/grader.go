package agent

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/llm"
	"github.com/karimelsayad/bookrag/types"
)

var gradeSchema = &llm.ResponseFormat{
	Type: "json_schema",
	JSONSchema: &llm.JSONSchemaFormat{
		Name:   "grade_documents",
		Strict: true,
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"binary_score": {
					"type": "string",
					"enum": ["yes", "no"],
					"description": "Relevance score: 'yes' if relevant, or 'no' if not relevant"
				}
			},
			"required": ["binary_score"],
			"additionalProperties": false
		}`),
	},
}

// Grader classifies retrieved context as relevant or irrelevant to the
// question with a schema-constrained binary score.
type Grader struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewGrader creates a relevance grading step.
func NewGrader(provider llm.Provider, model string, logger *zap.Logger) *Grader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Grader{
		provider: provider,
		model:    model,
		logger:   logger.With(zap.String("component", "grader")),
	}
}

// Grade returns the binary relevance verdict for the concatenated text of
// the most recent retrieval. Output outside {"yes","no"} is a contract
// violation, never coerced.
func (g *Grader) Grade(ctx context.Context, question, contextText string) (Verdict, error) {
	resp, err := g.provider.Completion(ctx, &llm.ChatRequest{
		Model: g.model,
		Messages: []types.Message{
			types.NewUserMessage(GradePrompt(question, contextText)),
		},
		ResponseFormat: gradeSchema,
	})
	if err != nil {
		return "", err
	}

	raw := llm.FirstChoiceText(resp)
	var out struct {
		BinaryScore string `json:"binary_score"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", types.NewError(types.ErrMalformedModelOutput,
			"grader output is not valid JSON").WithCause(err)
	}

	var verdict Verdict
	switch strings.ToLower(strings.TrimSpace(out.BinaryScore)) {
	case "yes":
		verdict = VerdictRelevant
	case "no":
		verdict = VerdictIrrelevant
	default:
		return "", types.NewError(types.ErrMalformedModelOutput,
			"grader binary_score must be 'yes' or 'no', got: "+out.BinaryScore)
	}

	g.logger.Debug("relevance graded", zap.String("verdict", string(verdict)))
	return verdict, nil
}
