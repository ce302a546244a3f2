package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/studyfind/studyfind/internal/config"
	dbRedis "github.com/studyfind/studyfind/internal/db/redis"
	logpkg "github.com/studyfind/studyfind/internal/logger"
	"github.com/studyfind/studyfind/internal/metrics"
	commentrepo "github.com/studyfind/studyfind/internal/repository/comment"
	materialrepo "github.com/studyfind/studyfind/internal/repository/material"
	"github.com/studyfind/studyfind/internal/repository/refcache"
	subjectrepo "github.com/studyfind/studyfind/internal/repository/subject"
	chiTransport "github.com/studyfind/studyfind/internal/transport/chi"
	healthuc "github.com/studyfind/studyfind/internal/usecase/health"
	searchuc "github.com/studyfind/studyfind/internal/usecase/search"
	"github.com/studyfind/studyfind/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting studyfind search API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register search metrics explicitly (no init())
	metrics.Register()

	// Repositories. The portal application owns the documents; this service
	// only ensures the read indexes exist.
	materials := materialrepo.New(store)
	comments := commentrepo.New(store)
	subjects := subjectrepo.New(store)

	if err := materials.EnsureIndex(ctx, store); err != nil {
		logger.Fatal("Failed to ensure material index", zap.Error(err))
	}
	if err := comments.EnsureIndex(ctx, store); err != nil {
		logger.Fatal("Failed to ensure comment index", zap.Error(err))
	}
	if err := subjects.EnsureIndex(ctx, store); err != nil {
		logger.Fatal("Failed to ensure subject index", zap.Error(err))
	}

	var subjectReader searchuc.SubjectReader = subjects
	if cfg.Cache.SubjectTTLSec > 0 {
		ttl := time.Duration(cfg.Cache.SubjectTTLSec) * time.Second
		subjectReader = refcache.New(subjects, ttl, metrics.SubjectCacheTotal, logger)
		logger.Info("Subject cache enabled", zap.Duration("ttl", ttl))
	}

	searchSvc := searchuc.New(materials, comments, subjectReader, logger).
		WithCommentConcurrency(cfg.Search.CommentConcurrency)

	healthSvc := healthuc.New(store, store,
		materialrepo.IndexName, commentrepo.IndexName, subjectrepo.IndexName)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger, chiTransport.Limits{
		SuggestionLimit: cfg.Search.SuggestionLimit,
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
	})

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
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

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					chiTransport.WriteInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.NewContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
