// Package metrics exposes Prometheus instrumentation for the question
// answering pipeline and the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector registers and updates the application's Prometheus metrics.
type Collector struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	questionsTotal     *prometheus.CounterVec
	questionDuration   *prometheus.HistogramVec
	retrievalsTotal    prometheus.Counter
	retrievedPassages  prometheus.Histogram
	rewritesTotal      prometheus.Counter
	budgetExhausted    prometheus.Counter
	pipelineErrors     *prometheus.CounterVec
}

// NewCollector creates a Collector registered on reg. A nil reg uses the
// default registerer.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		questionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "questions_total",
				Help:      "Answered questions by route and confidence",
			},
			[]string{"route", "confidence"},
		),
		questionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "question_duration_seconds",
				Help:      "End-to-end question answering duration in seconds",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"route"},
		),
		retrievalsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "retrievals_total",
				Help:      "Total number of retrieval attempts",
			},
		),
		retrievedPassages: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "retrieved_passages",
				Help:      "Passages returned per retrieval",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
			},
		),
		rewritesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_rewrites_total",
				Help:      "Total number of query rewrite rounds",
			},
		),
		budgetExhausted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rewrite_budget_exhausted_total",
				Help:      "Questions answered best-effort after the rewrite cap",
			},
		),
		pipelineErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pipeline_errors_total",
				Help:      "Failed questions by error code",
			},
			[]string{"code"},
		),
	}
}

// RecordHTTPRequest counts one HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordQuestion counts one answered question.
func (c *Collector) RecordQuestion(route string, lowConfidence bool, attempts, rewrites int, duration time.Duration) {
	confidence := "normal"
	if lowConfidence {
		confidence = "low"
		c.budgetExhausted.Inc()
	}
	c.questionsTotal.WithLabelValues(route, confidence).Inc()
	c.questionDuration.WithLabelValues(route).Observe(duration.Seconds())
	c.retrievalsTotal.Add(float64(attempts))
	c.rewritesTotal.Add(float64(rewrites))
}

// RecordRetrievalSize observes the passage count of one retrieval.
func (c *Collector) RecordRetrievalSize(passages int) {
	c.retrievedPassages.Observe(float64(passages))
}

// RecordError counts one failed question by error code.
func (c *Collector) RecordError(code string) {
	c.pipelineErrors.WithLabelValues(code).Inc()
}
