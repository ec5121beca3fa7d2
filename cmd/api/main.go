// Package main is the entry point for the travel planner API server.
// It wires configuration, storage, services and HTTP routing together.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pkordes/travel-planner/internal/config"
	"github.com/pkordes/travel-planner/internal/genai"
	"github.com/pkordes/travel-planner/internal/handler"
	"github.com/pkordes/travel-planner/internal/middleware"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/migrations"
)

func main() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// goose works on database/sql; borrow a handle backed by the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	applied, err := migrations.Up(ctx, sqlDB)
	sqlDB.Close()
	if err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "count", applied)

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(pool)
	stops := repo.NewStopRepo(pool)
	activities := repo.NewActivityRepo(pool)

	var generator service.TextGenerator
	if cfg.GenAIAPIKey != "" {
		opts := []genai.Option{genai.WithModel(cfg.GenAIModel), genai.WithRateLimit(cfg.GenAIRatePerSec)}
		if cfg.GenAIBaseURL != "" {
			opts = append(opts, genai.WithBaseURL(cfg.GenAIBaseURL))
		}
		generator = genai.New(cfg.GenAIAPIKey, opts...)
	} else {
		slog.Info("GENAI_API_KEY not set; location descriptions and recommendations are disabled")
	}
	descriptions := service.NewDescriptionCache(cfg.DescriptionCacheSize, cfg.DescriptionCacheTTL)

	srv := handler.NewServer(handler.Services{
		Trips:      service.NewTripService(trips),
		Stops:      service.NewStopService(trips, stops),
		Activities: service.NewActivityService(trips, stops, activities),
		Budget:     service.NewBudgetService(trips, stops, activities),
		Itinerary:  service.NewItineraryService(trips, stops, activities),
		Calendar:   service.NewCalendarService(trips),
		Export:     service.NewExportService(trips, stops, activities),
		Locations:  service.NewLocationService(generator, descriptions),
	}, logger)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → body limit.
	// /api additionally requires a bearer token.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/healthz", handler.GetHealth)
	r.Get("/openapi.yaml", handler.GetOpenAPI)
	r.With(middleware.NewAuthenticator(cfg.JWTSecret)).Mount("/api", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// The write timeout leaves room for generation calls retrying with backoff.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
