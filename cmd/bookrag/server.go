package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/karimelsayad/bookrag/api/handlers"
	"github.com/karimelsayad/bookrag/config"
	"github.com/karimelsayad/bookrag/internal/metrics"
	"github.com/karimelsayad/bookrag/internal/server"
)

func runServe(args []string) {
	cfg := loadConfig(flag.NewFlagSet("serve", flag.ExitOnError), args)

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	logger.Info("starting bookrag",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	p := newPipeline(cfg, logger)
	collector := metrics.NewCollector("bookrag", nil)

	router := newRouter(cfg, p, collector, logger)

	manager := server.NewManager(router, server.Config{
		Addr:            fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     2 * cfg.Server.ReadTimeout,
		MaxHeaderBytes:  1 << 20,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	if err := manager.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
	manager.WaitForShutdown()

	logger.Info("bookrag stopped")
}

func newRouter(cfg *config.Config, p *pipeline, collector *metrics.Collector, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(metricsMiddleware(collector))

	if cfg.Server.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
		r.Use(rateLimitMiddleware(limiter, logger))
	}

	askHandler := handlers.NewAskHandler(p.agent, collector, logger)
	healthHandler := handlers.NewHealthHandler(p.store, logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteSuccess(w, map[string]string{
			"service": "bookrag",
			"version": Version,
		})
	})
	r.Post("/api/ask", askHandler.ServeHTTP)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
