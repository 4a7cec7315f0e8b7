package job

import (
	"context"

	"citron-srv/internal/report"
	"citron-srv/pkg/log"

	"github.com/google/uuid"
)

// Start begins firing scheduled jobs in background goroutines.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.l.Infof(ctx, "report.delivery.job.Start: %d jobs scheduled", s.Jobs())
}

// Close stops the schedule and waits for running jobs to return.
func (s *Scheduler) Close() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runReconcile() {
	s.run("reconcile", s.uc.Reconcile)
}

func (s *Scheduler) runAnnounce() {
	s.run("announce", s.uc.Announce)
}

func (s *Scheduler) runSyncFeedback() {
	s.run("sync_feedback", s.uc.SyncFeedback)
}

func (s *Scheduler) run(name string, fn func(context.Context, report.JobInput) (report.JobOutput, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ctx = log.WithCorrelationID(ctx, uuid.NewString())

	out, err := fn(ctx, report.JobInput{})
	if err != nil {
		s.l.Errorf(ctx, "report.delivery.job.%s: %v", name, err)
		return
	}
	for _, r := range out.Results {
		if r.Status == report.StatusFailed {
			s.l.Warnf(ctx, "report.delivery.job.%s: %s %s: %s", name, out.Date, r.WikiID, r.Reason)
			continue
		}
		s.l.Infof(ctx, "report.delivery.job.%s: %s %s: %s", name, out.Date, r.WikiID, r.Status)
	}
}

// cronLogger routes cron's own messages to the service logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s %v: %v", msg, keysAndValues, err)
}

// Jobs returns the number of scheduled jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}
