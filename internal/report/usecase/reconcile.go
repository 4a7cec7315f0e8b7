package usecase

import (
	"context"
	"fmt"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/util"
)

func (uc *implUseCase) Reconcile(ctx context.Context, ip report.JobInput) (report.JobOutput, error) {
	now := uc.now().UTC()
	day, err := resolveDay(ip.Date, now)
	if err != nil {
		return report.JobOutput{}, err
	}
	wikis, err := uc.selectWikis(ip.WikiID)
	if err != nil {
		return report.JobOutput{}, err
	}

	results := uc.forEachWiki(ctx, jobReconcile, wikis, func(ctx context.Context, w model.Wiki) (string, string, error) {
		return uc.reconcileWiki(ctx, w, day, now)
	})

	return report.JobOutput{Date: util.FormatDate(day), Results: results}, nil
}

func (uc *implUseCase) reconcileWiki(ctx context.Context, w model.Wiki, day, now time.Time) (string, string, error) {
	from, to := util.DayRangeUTC(day)
	if to.After(now) {
		to = now
	}

	rows, err := uc.detectionUC.ListDetections(ctx, detection.ListDetectionsInput{
		WikiID: w.ID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return "", "", err
	}
	if len(rows) == 0 {
		return report.StatusSkipped, "no detections", nil
	}

	date := util.FormatDate(day)
	feedbacks := []model.ReportFeedback{}
	existing, err := fetchReport(ctx, uc.wikis.REST(w.ServerName), uc.pageTitle(date))
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Reconcile: Existing report of %s on %s not used: %v", date, w.ID, err)
	} else {
		feedbacks = existing.Feedbacks
	}

	updatedAt := util.FormatISOSecond(now)
	r := BuildReport(rows, feedbacks, uc.cfg.Version, updatedAt)
	if err := uc.saveReport(ctx, w, date, r, fmt.Sprintf(updateSummaryFormat, updatedAt)); err != nil {
		return "", "", err
	}

	uc.l.Infof(ctx, "report.usecase.Reconcile: Updated report %s on %s with %d hostnames", date, w.ID, len(r.Hostnames))
	return report.StatusUpdated, "", nil
}
