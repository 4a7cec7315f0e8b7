package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/util"

	"golang.org/x/sync/errgroup"
)

const (
	jobReconcile    = "reconcile"
	jobAnnounce     = "announce"
	jobSyncFeedback = "sync_feedback"
)

// wikiFunc runs a job on one wiki and returns its status and, for skips, a
// reason. A returned error marks the wiki failed.
type wikiFunc func(ctx context.Context, w model.Wiki) (status, reason string, err error)

// selectWikis returns the wiki named wikiID, or every configured wiki
// ordered by id when wikiID is empty.
func (uc *implUseCase) selectWikis(wikiID string) ([]model.Wiki, error) {
	if wikiID != "" {
		w, ok := uc.cfg.Wikis[wikiID]
		if !ok {
			return nil, report.ErrWikiNotConfigured
		}
		return []model.Wiki{w}, nil
	}

	wikis := make([]model.Wiki, 0, len(uc.cfg.Wikis))
	for _, w := range uc.cfg.Wikis {
		wikis = append(wikis, w)
	}
	sort.Slice(wikis, func(i, j int) bool { return wikis[i].ID < wikis[j].ID })
	return wikis, nil
}

// resolveDay parses date, or returns the UTC day of fallback when date is
// empty.
func resolveDay(date string, fallback time.Time) (time.Time, error) {
	if date == "" {
		return util.StartOfDayUTC(fallback), nil
	}
	day, err := util.ParseDateUTC(date)
	if err != nil {
		return time.Time{}, report.ErrInvalidDate
	}
	return day, nil
}

// forEachWiki runs fn on every wiki concurrently. A failing wiki does not
// stop the others.
func (uc *implUseCase) forEachWiki(ctx context.Context, job string, wikis []model.Wiki, fn wikiFunc) []report.WikiResult {
	results := make([]report.WikiResult, len(wikis))

	var g errgroup.Group
	g.SetLimit(uc.cfg.Concurrency)
	for i, w := range wikis {
		g.Go(func() error {
			status, reason, err := fn(ctx, w)
			if err != nil {
				uc.l.Errorf(ctx, "report.usecase.%s: wiki %s failed: %v", job, w.ID, err)
				uc.notifyFailure(ctx, job, w.ID, err)
				status, reason = report.StatusFailed, err.Error()
			}
			results[i] = report.WikiResult{WikiID: w.ID, Status: status, Reason: reason}
			if uc.metrics != nil {
				uc.metrics.JobRuns.WithLabelValues(job, w.ID, status).Inc()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (uc *implUseCase) notifyFailure(ctx context.Context, job, wikiID string, err error) {
	if uc.discord == nil {
		return
	}
	if sendErr := uc.discord.SendError(ctx, "Citron job failed", fmt.Sprintf("%s on %s", job, wikiID), err); sendErr != nil {
		uc.l.Warnf(ctx, "report.usecase.notifyFailure: %v", sendErr)
	}
}
