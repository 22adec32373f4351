// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dokonepal/doko/internal/api"
	"github.com/dokonepal/doko/internal/auth"
	"github.com/dokonepal/doko/internal/index"
	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/refresh"
	"github.com/dokonepal/doko/internal/service"
	"github.com/dokonepal/doko/internal/sse"
	"github.com/dokonepal/doko/internal/store"
	"github.com/dokonepal/doko/internal/timeline"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_path", cfg.Data.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure data directory exists.
	if err := os.MkdirAll(cfg.Data.Path, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Initialize persistence.
	provider, err := kvstore.NewFS(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init kvstore: %w", err)
	}

	// Initialize SQLite activity index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Record store over the persistence provider.
	st := store.New(provider, logger)
	if err := st.Load(); err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	// Project schedule.
	sched, err := newSchedule(cfg.Timeline)
	if err != nil {
		return fmt.Errorf("init timeline: %w", err)
	}

	// Sessions.
	mgr := auth.NewManager(provider, logger, cfg.Auth.InactivityLimit())

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Coordinator: wires activity into the index and the broker.
	svc := service.New(st, db, sched, mgr, broker, logger)
	svc.ReindexActivity()

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", api.NewRouter(svc, cfg.Auth.AuthEnabled(), app.version, broker))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the data directory for external edits.
	g.Go(func() error {
		return st.Watch(gCtx, cfg.Data.Path, logger, func() {
			svc.ReindexActivity()
			broker.Publish(sse.Event{Type: "data.reloaded", Data: map[string]string{}})
		})
	})

	// Periodic refresh pushes for live dashboards.
	liveDone := refresh.Tick(gCtx, cfg.Refresh.LiveInterval(), func() {
		broker.Publish(liveTickEvent(broker, time.Now()))
	})
	summaryDone := refresh.Tick(gCtx, cfg.Refresh.SummaryInterval(), func() {
		broker.Publish(sse.Event{Type: "summary.updated", Data: map[string]string{}})
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	<-liveDone
	<-summaryDone

	logger.Info("Server stopped successfully")
	return nil
}

// liveTickEvent is the payload pushed on each live refresh tick: the
// connected-client count and the server clock for the dashboard's live
// metric.
func liveTickEvent(broker *sse.Broker, now time.Time) sse.Event {
	return sse.Event{Type: "live.tick", Data: map[string]any{
		"clients": broker.ClientCount(),
		"time":    now.UTC().Format(time.RFC3339),
	}}
}

// newSchedule builds the project schedule from config, falling back to the
// built-in window when unset.
func newSchedule(cfg TimelineConfig) (*timeline.Schedule, error) {
	start, end := timeline.DefaultWindowStart, timeline.DefaultWindowEnd
	if cfg.WindowStart != "" {
		parsed, err := time.Parse("2006-01-02", cfg.WindowStart)
		if err != nil {
			return nil, fmt.Errorf("timeline window_start: %w", err)
		}
		start = parsed
	}
	if cfg.WindowEnd != "" {
		parsed, err := time.Parse("2006-01-02", cfg.WindowEnd)
		if err != nil {
			return nil, fmt.Errorf("timeline window_end: %w", err)
		}
		end = parsed
	}
	if !end.After(start) {
		return nil, fmt.Errorf("timeline window_end %s is not after window_start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return timeline.NewSchedule(start, end), nil
}
