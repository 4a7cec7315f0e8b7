package job

import (
	"errors"
	"time"

	"citron-srv/internal/report"
	"citron-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

const (
	DefaultReconcileSpec = "59 59 * * * *"
	DefaultAnnounceSpec  = "59 59 * * * *"
	DefaultSyncSpec      = "5 0 0 * * *"
	DefaultRunTimeout    = 30 * time.Minute
)

// Config enables each report job and sets its six-field cron spec, seconds
// first, evaluated in UTC.
type Config struct {
	Logger  log.Logger
	UseCase report.UseCase

	ReconcileEnabled bool
	ReconcileSpec    string
	AnnounceEnabled  bool
	AnnounceSpec     string
	SyncEnabled      bool
	SyncSpec         string
	RunTimeout       time.Duration
}

// Scheduler runs the report jobs on their cron schedules.
type Scheduler struct {
	l       log.Logger
	uc      report.UseCase
	cron    *cron.Cron
	timeout time.Duration
}

// New validates cfg and registers the enabled jobs. Nothing runs until Start.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, errors.New("usecase is required")
	}
	if cfg.ReconcileSpec == "" {
		cfg.ReconcileSpec = DefaultReconcileSpec
	}
	if cfg.AnnounceSpec == "" {
		cfg.AnnounceSpec = DefaultAnnounceSpec
	}
	if cfg.SyncSpec == "" {
		cfg.SyncSpec = DefaultSyncSpec
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = DefaultRunTimeout
	}

	cl := cronLogger{l: cfg.Logger}
	s := &Scheduler{
		l:       cfg.Logger,
		uc:      cfg.UseCase,
		timeout: cfg.RunTimeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}

	jobs := []struct {
		enabled bool
		spec    string
		run     func()
	}{
		{cfg.ReconcileEnabled, cfg.ReconcileSpec, s.runReconcile},
		{cfg.AnnounceEnabled, cfg.AnnounceSpec, s.runAnnounce},
		{cfg.SyncEnabled, cfg.SyncSpec, s.runSyncFeedback},
	}
	for _, j := range jobs {
		if !j.enabled {
			continue
		}
		if _, err := s.cron.AddFunc(j.spec, j.run); err != nil {
			return nil, err
		}
	}

	return s, nil
}
