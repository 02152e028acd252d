// Package main is the entry point for the MoneyMap API server.
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

	"github.com/moneymap/backend/config"
	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/infra/db"
	"github.com/moneymap/backend/internal/infra/dependency"
	"github.com/moneymap/backend/internal/infra/server/router"
	"github.com/moneymap/backend/internal/integration/cache"
	"github.com/moneymap/backend/internal/integration/entrypoint/controller"
	"github.com/moneymap/backend/internal/integration/persistence/model"
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

	slog.Info("Starting MoneyMap API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
	} else {
		// Run database migrations
		if err := database.AutoMigrate(&model.RecordModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize report cache, falling back to a noop cache when Redis
	// is disabled or unreachable
	var reportCache adapter.ReportCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, report caching disabled", "error", err)
			reportCache = cache.NewNoopReportCache()
		} else {
			reportCache = cache.NewReportCache(redisClient)
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
		}
	} else {
		slog.Info("Report caching disabled by configuration")
		reportCache = cache.NewNoopReportCache()
	}

	// Wire dependencies and setup router
	var appRouter *router.Router
	if database != nil {
		injector := dependency.NewInjector(cfg, database.DB(), reportCache)
		appRouter = injector.Router
	} else {
		healthController := controller.NewHealthController(func() bool { return false })
		appRouter = router.NewRouter(healthController, nil, nil, nil)
		slog.Warn("Record, report and export endpoints not registered due to missing database connection")
	}

	engine := appRouter.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
