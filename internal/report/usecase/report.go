package usecase

import (
	"context"

	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/util"
)

// GetReport reads the report page of one wiki, today's when Date is empty.
func (uc *implUseCase) GetReport(ctx context.Context, ip report.GetReportInput) (model.Report, error) {
	day, err := resolveDay(ip.Date, uc.now().UTC())
	if err != nil {
		return model.Report{}, err
	}
	w, ok := uc.cfg.Wikis[ip.WikiID]
	if !ok {
		return model.Report{}, report.ErrWikiNotConfigured
	}

	r, err := fetchReport(ctx, uc.wikis.REST(w.ServerName), uc.pageTitle(util.FormatDate(day)))
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.GetReport: %v", err)
		return model.Report{}, err
	}
	return r, nil
}
