// Package main is the entry point for the Inkpress content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"inkpress/internal/config"
	"inkpress/internal/database"
	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
	"inkpress/internal/router"
	"inkpress/internal/store"
)

// Admin mutation rate limit, per client IP.
const (
	rateLimitRequests = 60
	rateLimitWindow   = time.Minute
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

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

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible), backing the admin rate limiter.
	valkeyClient := redis.NewClient(&redis.Options{
		Addr:     cfg.ValkeyAddr(),
		Password: cfg.ValkeyPassword,
		DB:       0,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = valkeyClient.Ping(pingCtx).Err()
	cancelPing()
	if err != nil {
		slog.Error("failed to connect to valkey", "error", fmt.Errorf("valkey ping: %w", err))
		os.Exit(1)
	}
	defer valkeyClient.Close()
	slog.Info("valkey connected", "addr", cfg.ValkeyAddr())

	limiter := middleware.NewRateLimiter(valkeyClient, rateLimitRequests, rateLimitWindow)

	// Initialize data stores.
	postStore := store.NewPostStore(db)
	categoryStore := store.NewCategoryStore(db)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(postStore, categoryStore)
	adminHandlers := handlers.NewAdmin(postStore, categoryStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, adminHandlers, []byte(cfg.JWTSecret), limiter)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
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
