package consumer

import (
	"context"

	"citron-srv/config"
	"citron-srv/internal/core"
	"citron-srv/pkg/log"
)

// ConsumerServer runs the recent-change ingestor, the report jobs and the
// ops listener.
type ConsumerServer struct {
	l         log.Logger
	infra     core.Infra
	opsPort   int
	streamCfg config.StreamConfig
	jobsCfg   config.JobsConfig
	userAgent string
}

// Config holds all dependencies for the consumer server
type Config struct {
	Logger    log.Logger
	Infra     core.Infra
	OpsPort   int
	Stream    config.StreamConfig
	Jobs      config.JobsConfig
	UserAgent string
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts the ingestor and the jobs, and
// handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(context.Background(), "Consumer Server stopped gracefully")
	return nil
}
