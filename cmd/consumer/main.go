package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"citron-srv/config"
	"citron-srv/internal/consumer"
	"citron-srv/internal/core"
	"citron-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Citron Consumer Service...")

	infra, cleanup, err := core.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect infrastructure: %v", err)
		return
	}
	defer cleanup()

	srv, err := consumer.New(consumer.Config{
		Logger:    logger,
		Infra:     infra,
		OpsPort:   cfg.OpsServer.Port,
		Stream:    cfg.Stream,
		Jobs:      cfg.Jobs,
		UserAgent: cfg.Wiki.UserAgent,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}
}
