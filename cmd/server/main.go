package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/corezen-health/screening-server/internal/api"
	"github.com/corezen-health/screening-server/internal/config"
	"github.com/corezen-health/screening-server/internal/logging"
	"github.com/corezen-health/screening-server/internal/registry"
	"github.com/corezen-health/screening-server/internal/service"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := logging.NewLogger(cfg.Logging)

	// Open the client registry
	var store registry.Store
	switch cfg.Registry.Driver {
	case "postgres":
		store, err = registry.NewPostgresStoreFromURL(cfg.Registry.PostgresURL, cfg.Registry.IDWidth)
	default:
		store, err = registry.NewSQLiteStore(cfg.Registry.SQLitePath, cfg.Registry.IDWidth)
	}
	if err != nil {
		log.Fatalf("Failed to open registry store: %v", err)
	}
	defer store.Close()

	reports, err := service.NewReportService(cfg.Report.CacheSize, logger)
	if err != nil {
		log.Fatalf("Failed to create report service: %v", err)
	}

	logger.Infof("Starting screening server on %s:%d", cfg.Server.Host, cfg.Server.Port)

	server := api.NewServer(cfg, logger, reports, store)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	logger.Info("Server stopped")
}
