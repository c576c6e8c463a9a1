package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CollectionProbe is the slice of the vector store the health check needs.
// *rag.QdrantStore satisfies it.
type CollectionProbe interface {
	CollectionExists(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int, error)
}

// HealthResponse reports service and collection readiness.
type HealthResponse struct {
	Status           string `json:"status"`
	QdrantConnected  bool   `json:"qdrant_connected"`
	CollectionExists bool   `json:"collection_exists"`
	DocumentsCount   int    `json:"documents_count"`
}

// HealthHandler serves GET /health.
type HealthHandler struct {
	probe  CollectionProbe
	logger *zap.Logger
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(probe CollectionProbe, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{
		probe:  probe,
		logger: logger.With(zap.String("component", "health_handler")),
	}
}

// ServeHTTP probes the vector store. The service is healthy only when the
// collection exists and holds documents; otherwise it reports degraded with
// a 503 so load balancers hold traffic until ingestion ran.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "degraded"}

	exists, err := h.probe.CollectionExists(ctx)
	if err != nil {
		h.logger.Warn("qdrant unreachable", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.QdrantConnected = true
	resp.CollectionExists = exists

	if exists {
		count, err := h.probe.Count(ctx)
		if err != nil {
			h.logger.Warn("collection count failed", zap.Error(err))
			WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.DocumentsCount = count
	}

	if resp.CollectionExists && resp.DocumentsCount > 0 {
		resp.Status = "healthy"
		WriteJSON(w, http.StatusOK, resp)
		return
	}
	WriteJSON(w, http.StatusServiceUnavailable, resp)
}
