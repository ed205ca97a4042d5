// Package main is the entry point for the Finance Signals API server.
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

	"github.com/finance-tracker/signals/config"
	infracache "github.com/finance-tracker/signals/internal/infra/cache"
	"github.com/finance-tracker/signals/internal/infra/db"
	"github.com/finance-tracker/signals/internal/infra/dependency"
)

const (
	// cleanupInterval is how often expired rate limit windows and idle boards are dropped.
	cleanupInterval = 5 * time.Minute
	// boardIdleTTL is how long a user's alert board survives without a request.
	boardIdleTTL = 30 * time.Minute
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Signals API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"rollup_source", cfg.Signals.Source,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	opts := dependency.Options{
		DBHealthChecker: database.HealthCheck,
	}

	// Initialize Redis connection; dismissals fall back to memory when it is disabled
	if cfg.Redis.Enabled {
		redisConn, err := infracache.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Error("Redis connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisConn.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
		opts.Redis = redisConn.Client()
		opts.CacheHealthChecker = redisConn.HealthCheck
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), opts)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Periodically drop expired rate limit windows
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				injector.SignalRateLimiter.Cleanup()
				if n := injector.BoardSessions.EvictIdle(time.Now().Add(-boardIdleTTL)); n > 0 {
					slog.Info("Evicted idle alert boards", "count", n, "remaining", injector.BoardSessions.Len())
				}
			}
		}
	}()

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
