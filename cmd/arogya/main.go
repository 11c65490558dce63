// Package main is the entry point for the health content catalog server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogya/internal/cache"
	"arogya/internal/config"
	"arogya/internal/database"
	"arogya/internal/handlers"
	"arogya/internal/middleware"
	"arogya/internal/router"
	"arogya/internal/search"
	"arogya/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the standard categories and starter content in development
	// (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey — it backs the write rate limiter.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	limiter := middleware.NewRateLimiter(valkeyClient, cfg.WriteRateLimit, time.Minute)

	// Initialize data stores and the search component.
	categoryStore := store.NewCategoryStore(db)
	contentStore := store.NewContentStore(db)
	ratingStore := store.NewRatingStore(db)
	searcher := search.New(contentStore)

	// Create handler groups with their dependencies.
	categoryHandlers := handlers.NewCategories(categoryStore, contentStore)
	contentHandlers := handlers.NewContent(contentStore, categoryStore, ratingStore, searcher)
	ratingHandlers := handlers.NewRatings(ratingStore, contentStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(categoryHandlers, contentHandlers, ratingHandlers, limiter)

	// Create the HTTP server with sensible timeouts. All handlers are
	// synchronous request/response against the store, so short write
	// timeouts are safe.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
