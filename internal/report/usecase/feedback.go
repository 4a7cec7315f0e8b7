package usecase

import (
	"context"
	"fmt"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/internal/report/repository"
	"citron-srv/pkg/util"

	"github.com/google/uuid"
)

// SyncFeedback defaults to the day before today.
func (uc *implUseCase) SyncFeedback(ctx context.Context, ip report.JobInput) (report.JobOutput, error) {
	now := uc.now().UTC()
	day, err := resolveDay(ip.Date, now.AddDate(0, 0, -1))
	if err != nil {
		return report.JobOutput{}, err
	}
	wikis, err := uc.selectWikis(ip.WikiID)
	if err != nil {
		return report.JobOutput{}, err
	}

	results := uc.forEachWiki(ctx, jobSyncFeedback, wikis, func(ctx context.Context, w model.Wiki) (string, string, error) {
		return uc.syncWiki(ctx, w, day, now)
	})

	return report.JobOutput{Date: util.FormatDate(day), Results: results}, nil
}

func (uc *implUseCase) syncWiki(ctx context.Context, w model.Wiki, day, now time.Time) (string, string, error) {
	date := util.FormatDate(day)
	r, err := fetchReport(ctx, uc.wikis.REST(w.ServerName), uc.pageTitle(date))
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.SyncFeedback: Report %s on %s unavailable: %v", date, w.ID, err)
		return report.StatusSkipped, "report unavailable", nil
	}
	if len(r.Feedbacks) == 0 {
		return report.StatusSkipped, "no feedback", nil
	}

	stored := 0
	for _, f := range r.Feedbacks {
		if f.Synced {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, f.CreatedAt)
		if err != nil {
			return "", "", fmt.Errorf("%w: feedback createdAt %q", report.ErrReportMalformed, f.CreatedAt)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return "", "", err
		}
		if err := uc.repo.CreateFeedback(ctx, repository.CreateFeedbackOptions{
			Feedback: model.Feedback{
				ID:         id,
				CreatedAt:  createdAt,
				CreatedBy:  f.CreatedBy,
				WikiID:     w.ID,
				ReportDate: date,
				Hostname:   f.Hostname,
				Status:     f.Status,
				Hash:       f.Hash,
			},
		}); err != nil {
			return "", "", err
		}
		stored++
	}

	promoted := 0
	for _, h := range PromotedHostnames(r.Feedbacks) {
		ignored, err := uc.detectionUC.IsIgnored(ctx, detection.IsIgnoredInput{WikiID: w.ID, Hostname: h})
		if err != nil {
			return "", "", err
		}
		if ignored {
			continue
		}
		if _, err := uc.detectionUC.IgnoreHostname(ctx, detection.IgnoreHostnameInput{WikiID: w.ID, Hostname: h}); err != nil {
			return "", "", err
		}
		promoted++
	}

	r.UpdatedAt = util.FormatISOSecond(now)
	for i := range r.Feedbacks {
		r.Feedbacks[i].Synced = true
	}
	if err := uc.saveReport(ctx, w, date, r, syncSummary); err != nil {
		return "", "", err
	}

	uc.l.Infof(ctx, "report.usecase.SyncFeedback: %s on %s: stored %d feedbacks, ignored %d hostnames", date, w.ID, stored, promoted)
	return report.StatusSynced, "", nil
}
