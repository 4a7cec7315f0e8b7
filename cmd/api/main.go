package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"citron-srv/config"
	"citron-srv/internal/core"
	"citron-srv/internal/httpserver"
	"citron-srv/pkg/log"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Connect infrastructure
	infra, cleanup, err := core.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect infrastructure: %v", err)
		return
	}
	defer cleanup()

	// 5. Run the admin API
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		InternalKey: cfg.InternalConfig.InternalKey,
		Infra:       infra,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
	}
}
