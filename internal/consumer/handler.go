package consumer

import (
	"context"
	"fmt"
	"net/http"

	"citron-srv/internal/core"
	"citron-srv/internal/detection/delivery/stream"
	reportJob "citron-srv/internal/report/delivery/job"
	"citron-srv/pkg/sse"
)

// domainConsumers holds references to all background runners for cleanup
type domainConsumers struct {
	ingestor  *stream.Ingestor
	scheduler *reportJob.Scheduler
	ops       *http.Server
}

// setupDomains initializes all domain layers and the runners that drive them
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	domains, err := core.Setup(ctx, srv.infra)
	if err != nil {
		return nil, err
	}

	ingestor, err := stream.New(stream.Config{
		Logger:           srv.l,
		Subscriber:       sse.New(&http.Client{}, srv.userAgent),
		UseCase:          domains.Detection,
		Metrics:          srv.infra.Metrics,
		Wikis:            domains.Wikis,
		URL:              srv.streamCfg.URL,
		Window:           srv.streamCfg.Window,
		WatchdogInterval: srv.streamCfg.WatchdogInterval,
		MinBackoff:       srv.streamCfg.MinBackoff,
		MaxBackoff:       srv.streamCfg.MaxBackoff,
		Workers:          srv.streamCfg.Workers,
		QueueSize:        srv.streamCfg.QueueSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream ingestor: %w", err)
	}

	scheduler, err := reportJob.New(reportJob.Config{
		Logger:           srv.l,
		UseCase:          domains.Report,
		ReconcileEnabled: srv.jobsCfg.Reconcile.Enabled,
		ReconcileSpec:    srv.jobsCfg.Reconcile.Spec,
		AnnounceEnabled:  srv.jobsCfg.Announce.Enabled,
		AnnounceSpec:     srv.jobsCfg.Announce.Spec,
		SyncEnabled:      srv.jobsCfg.Sync.Enabled,
		SyncSpec:         srv.jobsCfg.Sync.Spec,
		RunTimeout:       srv.jobsCfg.RunTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report scheduler: %w", err)
	}

	srv.l.Infof(ctx, "Detection and report domains initialized")

	return &domainConsumers{
		ingestor:  ingestor,
		scheduler: scheduler,
		ops:       srv.newOpsServer(),
	}, nil
}

// startConsumers starts the ops listener, the ingestor and the jobs
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	go func() {
		srv.l.Infof(ctx, "Ops server listening on %s", consumers.ops.Addr)
		if err := consumers.ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.l.Errorf(ctx, "Ops server error: %v", err)
		}
	}()

	if err := consumers.ingestor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start stream ingestor: %w", err)
	}
	consumers.scheduler.Start(ctx)

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers stops the jobs, then the ingestor, then the ops listener
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	consumers.scheduler.Close()
	consumers.ingestor.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, opsShutdownTimeout)
	defer cancel()
	if err := consumers.ops.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Error closing ops server: %v", err)
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
