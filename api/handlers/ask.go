package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/agent"
	"github.com/karimelsayad/bookrag/internal/metrics"
	"github.com/karimelsayad/bookrag/types"
)

// Answerer is the question answering pipeline behind the ask endpoint.
// *agent.Agent satisfies it.
type Answerer interface {
	Answer(ctx context.Context, question string) (*agent.Result, error)
}

// AskRequest is the ask endpoint's request body.
type AskRequest struct {
	Question       string `json:"question"`
	IncludeSources bool   `json:"include_sources"`
}

// Source is one citation in the ask response.
type Source struct {
	SourceFile     string `json:"source_file"`
	Page           int    `json:"page"`
	ContentPreview string `json:"content_preview"`
}

// AskResponse is the ask endpoint's response payload.
type AskResponse struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	Sources       []Source `json:"sources,omitempty"`
	LowConfidence bool     `json:"low_confidence,omitempty"`
}

// AskHandler serves POST /api/ask.
type AskHandler struct {
	answerer Answerer
	metrics  *metrics.Collector
	logger   *zap.Logger
}

// NewAskHandler creates the ask handler. metrics may be nil.
func NewAskHandler(answerer Answerer, collector *metrics.Collector, logger *zap.Logger) *AskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskHandler{
		answerer: answerer,
		metrics:  collector,
		logger:   logger.With(zap.String("component", "ask_handler")),
	}
}

// ServeHTTP answers one question. The request context bounds the whole
// pipeline; a client disconnect aborts in-flight model and index calls.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, types.NewError(types.ErrInvalidRequest, "invalid JSON body").WithCause(err), h.logger)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		WriteError(w, types.NewError(types.ErrInvalidRequest, "question is required"), h.logger)
		return
	}

	result, err := h.answerer.Answer(r.Context(), req.Question)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordError(string(types.GetErrorCode(err)))
		}
		WriteError(w, err, h.logger)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordQuestion(string(result.Route), result.LowConfidence,
			result.Attempts, result.Rewrites, time.Since(started))
		h.metrics.RecordRetrievalSize(len(result.Sources))
	}

	resp := AskResponse{
		Question:      result.Question,
		Answer:        result.Answer,
		LowConfidence: result.LowConfidence,
	}
	if req.IncludeSources {
		for _, p := range result.Sources {
			resp.Sources = append(resp.Sources, Source{
				SourceFile:     p.Source,
				Page:           p.Page,
				ContentPreview: p.Preview,
			})
		}
	}

	h.logger.Info("question answered",
		zap.String("route", string(result.Route)),
		zap.Int("attempts", result.Attempts),
		zap.Bool("low_confidence", result.LowConfidence),
		zap.Duration("duration", time.Since(started)))
	WriteSuccess(w, resp)
}
