package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"projarapi/internal/config"
	"projarapi/internal/httpx"
	logpkg "projarapi/internal/logger"
	"projarapi/internal/metrics"
	"projarapi/internal/projar"
	"projarapi/internal/store"
	"projarapi/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting projar catalog API",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("db_dsn", redactDSN(cfg.Database.DSN)),
	)

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("Cannot open database", zap.String("dsn", redactDSN(cfg.Database.DSN)), zap.Error(err))
	}
	defer st.Close()
	logger.Info("Database connection OK")

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}

	var limiter *httpx.RateLimitMiddleware
	if cfg.RateLimit.RPS > 0 {
		limiter = httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Stop()
	}

	router := newRouter(routerDeps{
		cfg:      cfg,
		log:      logger,
		handler:  projar.NewHTTPHandler(projar.NewService(st, logger), logger),
		db:       st,
		limiter:  limiter,
		gatherer: prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
