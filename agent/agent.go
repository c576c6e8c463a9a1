package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/rag"
	"github.com/karimelsayad/bookrag/types"
)

// DefaultMaxRewrites bounds the Rewrite -> Route -> Retrieve -> Grade cycle.
// When the budget is exhausted the request ends with a best-effort,
// low-confidence answer rather than looping.
const DefaultMaxRewrites = 2

// noResultsMarker is the tool-result content recorded when retrieval comes
// back empty.
const noResultsMarker = "No relevant information found in the books."

// Retriever is the knowledge retrieval collaborator. rag.Retriever satisfies
// it; tests substitute fakes.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]rag.Passage, error)
}

// Config tunes one Agent instance.
type Config struct {
	// MaxRewrites caps rewrite rounds per request. Zero means
	// DefaultMaxRewrites; negative disables rewriting entirely.
	MaxRewrites int `json:"max_rewrites"`

	// TopK is the number of passages per retrieval. Zero means
	// rag.DefaultTopK.
	TopK int `json:"top_k"`
}

// Result is the outcome of one answered question.
type Result struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
	Route    RouteKind     `json:"route"`
	Sources  []rag.Passage `json:"sources,omitempty"`

	// Attempts counts retrieval attempts; Rewrites counts rewrite rounds.
	Attempts int `json:"attempts"`
	Rewrites int `json:"rewrites"`

	// LowConfidence marks an answer generated after the rewrite budget ran
	// out without a relevant grade. Callers must not present it as
	// authoritative.
	LowConfidence bool `json:"low_confidence"`

	Duration time.Duration `json:"-"`
}

// Agent sequences routing, retrieval, grading, rewriting and generation into
// one bounded conversation turn.
type Agent struct {
	router    *Router
	retriever Retriever
	grader    *Grader
	rewriter  *Rewriter
	generator *Generator
	cfg       Config
	logger    *zap.Logger
}

// New creates an Agent from its component steps.
func New(cfg Config, router *Router, retriever Retriever, grader *Grader, rewriter *Rewriter, generator *Generator, logger *zap.Logger) *Agent {
	if cfg.MaxRewrites == 0 {
		cfg.MaxRewrites = DefaultMaxRewrites
	}
	if cfg.MaxRewrites < 0 {
		cfg.MaxRewrites = 0
	}
	if cfg.TopK <= 0 {
		cfg.TopK = rag.DefaultTopK
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{
		router:    router,
		retriever: retriever,
		grader:    grader,
		rewriter:  rewriter,
		generator: generator,
		cfg:       cfg,
		logger:    logger.With(zap.String("component", "agent")),
	}
}

// Answer processes one question through the control graph. Any component
// failure aborts the whole turn; partial state is discarded, never returned
// as a partial answer.
func (a *Agent) Answer(ctx context.Context, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, types.NewError(types.ErrInvalidRequest, "question is required")
	}

	started := time.Now()
	state := NewConversationState(question)
	maxAttempts := a.cfg.MaxRewrites + 1

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		decision, err := a.router.Route(ctx, state.Turns())
		if err != nil {
			return nil, a.liftError(err, "routing failed")
		}

		if decision.Kind == RouteDirect {
			a.logger.Info("answered directly",
				zap.String("question", question),
				zap.Int("attempt", attempt))
			return &Result{
				Question: question,
				Answer:   decision.Answer,
				Route:    RouteDirect,
				Attempts: attempt - 1,
				Rewrites: attempt - 1,
				Duration: time.Since(started),
			}, nil
		}

		state.Append(types.NewAssistantMessage("").
			WithToolCalls([]types.ToolCall{decision.ToolCall}))

		passages, err := a.retriever.Retrieve(ctx, decision.Query, a.cfg.TopK)
		if err != nil {
			return nil, a.liftError(err, "retrieval failed")
		}
		state.SetSources(passages)

		contextText := rag.JoinPassages(passages)
		if contextText == "" {
			contextText = noResultsMarker
		}
		state.Append(types.NewToolMessage(decision.ToolCall.ID, RetrieverToolName, contextText))

		verdict, err := a.grader.Grade(ctx, state.OriginalQuestion(), contextText)
		if err != nil {
			return nil, a.liftError(err, "grading failed")
		}

		if verdict == VerdictRelevant {
			answer, err := a.generator.Generate(ctx, state.OriginalQuestion(), contextText)
			if err != nil {
				return nil, a.liftError(err, "generation failed")
			}
			a.logger.Info("answered from retrieved context",
				zap.String("question", question),
				zap.Int("attempts", attempt),
				zap.Int("sources", len(passages)))
			return &Result{
				Question: question,
				Answer:   answer,
				Route:    RouteRetrieve,
				Sources:  state.Sources(),
				Attempts: attempt,
				Rewrites: attempt - 1,
				Duration: time.Since(started),
			}, nil
		}

		if attempt == maxAttempts {
			// Rewrite budget exhausted. Generate best-effort from whatever
			// context the last attempt produced and mark the answer.
			answer, err := a.generator.GenerateLowConfidence(ctx, state.OriginalQuestion(), contextText)
			if err != nil {
				return nil, a.liftError(err, "low-confidence generation failed")
			}
			a.logger.Warn("rewrite budget exhausted",
				zap.String("question", question),
				zap.Int("attempts", attempt))
			return &Result{
				Question:      question,
				Answer:        answer,
				Route:         RouteRetrieve,
				Sources:       state.Sources(),
				Attempts:      attempt,
				Rewrites:      attempt - 1,
				LowConfidence: true,
				Duration:      time.Since(started),
			}, nil
		}

		rewritten, err := a.rewriter.Rewrite(ctx, state.OriginalQuestion())
		if err != nil {
			return nil, a.liftError(err, "rewriting failed")
		}
		state.Append(types.NewUserMessage(rewritten))
	}

	// Unreachable: every iteration either returns or appends a rewrite, and
	// the final iteration always returns.
	return nil, types.NewError(types.ErrLoopBudgetExceeded,
		fmt.Sprintf("no answer after %d retrieval attempts", maxAttempts))
}

// liftError normalizes component failures into a single terminal error for
// the request. Malformed model output aborts the attempt and is reported
// upward as a model call failure.
func (a *Agent) liftError(err error, msg string) error {
	code := types.GetErrorCode(err)
	switch code {
	case types.ErrMalformedModelOutput:
		return types.NewError(types.ErrModelCallFailed, msg).WithCause(err)
	case types.ErrRetrievalUnavailable, types.ErrModelCallFailed,
		types.ErrUpstreamTimeout, types.ErrInvalidRequest:
		return err
	default:
		return types.NewError(types.ErrModelCallFailed, msg).WithCause(err)
	}
}
