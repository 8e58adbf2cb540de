package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"projarapi/internal/config"
	"projarapi/internal/httpx"
	"projarapi/internal/metrics"
	"projarapi/internal/projar"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	cfg      config.Config
	log      *zap.Logger
	handler  *projar.HTTPHandler
	db       pinger
	limiter  *httpx.RateLimitMiddleware
	gatherer prometheus.Gatherer
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(d.log))
	r.Use(httpx.RecoveryMiddleware(d.log))
	r.Use(metrics.Middleware())
	r.Use(httpx.SecurityHeadersMiddleware(d.cfg.HTTP.EnableHSTS))
	r.Use(httpx.CORSMiddleware(d.cfg.CORS.AllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(d.cfg.HTTP.MaxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		timeout := time.Duration(d.cfg.Database.PingTimeoutSec) * time.Second
		if timeout <= 0 {
			timeout = 500 * time.Millisecond
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		if err := d.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if d.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if d.limiter != nil {
			r.Use(d.limiter.Middleware)
		}
		d.handler.Routes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})
	return r
}
