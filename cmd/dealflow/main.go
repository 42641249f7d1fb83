package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	dfhttp "github.com/dealflowhq/dealflow/internal/adapter/http"
	"github.com/dealflowhq/dealflow/internal/adapter/otel"
	"github.com/dealflowhq/dealflow/internal/adapter/postgres"
	"github.com/dealflowhq/dealflow/internal/adapter/ristretto"
	"github.com/dealflowhq/dealflow/internal/config"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/logger"
	"github.com/dealflowhq/dealflow/internal/middleware"
	"github.com/dealflowhq/dealflow/internal/port/database"
	"github.com/dealflowhq/dealflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"pg_max_conns", cfg.Postgres.MaxConns,
	)

	ctx := context.Background()

	// --- Observability ---
	shutdownOtel, err := otel.Setup(ctx, cfg.Logging.Service, cfg.Otel.Endpoint)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			slog.Warn("otel shutdown", "error", err)
		}
	}()

	metrics, err := otel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Infrastructure ---
	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	slog.Info("postgres connected")

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	slog.Info("migrations applied")

	store := postgres.NewStore(pool)

	if cfg.Postgres.Seed {
		if err := store.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	cache, err := ristretto.New(cfg.Dashboard.CacheSizeMB << 20)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer cache.Close()

	// --- Services ---
	winSpec := deal.WinSpec{
		ProjectTitlePrefix: cfg.Win.ProjectTitlePrefix,
		TaskTitles:         cfg.Win.TaskTitles,
	}

	handlers := &dfhttp.Handlers{
		Orgs:      service.NewOrganizationService(store, cache),
		Contacts:  service.NewContactService(store, cache),
		Deals:     service.NewDealService(store, cache, metrics, winSpec),
		Projects:  service.NewProjectService(store),
		Dashboard: service.NewDashboardService(store, cache, metrics, cfg.Dashboard.CacheTTL),
	}

	// --- HTTP ---
	r := chi.NewRouter()

	r.Use(dfhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(middleware.RequestID)
	r.Use(dfhttp.Logger)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(otel.HTTPMiddleware(cfg.Logging.Service))

	r.Get("/health", healthHandler(store))

	dfhttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// healthHandler reports readiness based on a live database ping.
func healthHandler(store database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := store.Ping(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded","postgres":"down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","postgres":"up"}`))
	}
}
