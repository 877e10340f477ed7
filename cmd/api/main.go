// Command api is the Calcio Data caching proxy server.
//
// Usage:
//
//	calcio-api
//	API_PORT=8080 PROVIDER=soccersapi calcio-api

// @title Calcio Data Proxy
// @version 1.0.0
// @description Caching reverse proxy for football data providers. Forwards /api/* to the configured upstream with credentials attached and assigns CDN cache lifetimes from inferred data volatility.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/calcioscope/calcio-data/internal/cache"
	"github.com/calcioscope/calcio-data/internal/cachepolicy"
	"github.com/calcioscope/calcio-data/internal/config"
	"github.com/calcioscope/calcio-data/internal/proxy"

	_ "github.com/calcioscope/calcio-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize response cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Build the proxy for the active provider
	handler := proxy.NewHandler(
		proxy.UpstreamFor(cfg),
		cachepolicy.ForProvider(cfg.Provider),
		appCache,
		logger,
	)

	// Create router
	router := proxy.NewRouter(handler, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Calcio Data Proxy",
			"addr", addr,
			"provider", cfg.Provider,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
