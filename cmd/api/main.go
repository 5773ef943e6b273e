// Package main is the entry point for the Feed Lake API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-pkgz/rest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/feedlake/data"
	"github.com/pkordes/feedlake/internal/config"
	"github.com/pkordes/feedlake/internal/handler"
	"github.com/pkordes/feedlake/internal/middleware"
	"github.com/pkordes/feedlake/internal/repo"
	"github.com/pkordes/feedlake/internal/service"
)

var revision = "local"

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Feeds ------------------------------------------------------------
	// The collection is loaded once; a bad file or a slug collision is fatal.
	store, err := repo.NewFeedStore(feedSource(cfg.FeedsDir))
	if err != nil {
		slog.Error("failed to load feeds", "dir", cfg.FeedsDir, "error", err)
		os.Exit(1)
	}
	feeds, err := service.NewFeedService(store)
	if err != nil {
		slog.Error("invalid feed collection", "error", err)
		os.Exit(1)
	}
	slog.Info("feeds loaded", "count", len(feeds.List()), "tags", len(feeds.Tags()), "embedded", cfg.FeedsDir == "")

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// --- Router -----------------------------------------------------------
	r := newRouter(cfg, feeds, logger, reg)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "revision", revision)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newRouter builds the chi router with the full middleware stack.
// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
// Recoverer → CORS → AppInfo.
// Recoverer sits inside the logger and metrics so a panic is recorded as a 500.
// reg receives the request collectors and is served at /metrics.
func newRouter(cfg config.Config, feeds handler.FeedServicer, logger *slog.Logger, reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(rest.AppInfo("feedlake", "pkordes", revision))

	// rest.Ping answers as a route middleware so /ping is logged and counted
	// under its own route; the endpoint handler is never reached for GET.
	r.With(rest.Ping).Get("/ping", http.NotFound)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	handler.NewServer(feeds, cfg.OPMLTitle).Register(r)
	return r
}

// feedSource returns the directory to load feeds from: dir on disk when set,
// otherwise the data set embedded in the binary.
func feedSource(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return data.Feeds()
}
