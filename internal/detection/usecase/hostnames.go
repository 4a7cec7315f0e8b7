package usecase

import (
	"context"
	"errors"
	"strings"

	"citron-srv/internal/detection"
	"citron-srv/internal/detection/repository"
	"citron-srv/internal/model"
	"citron-srv/pkg/util"
)

func (uc *implUseCase) GetDetections(ctx context.Context, ip detection.GetDetectionsInput) (detection.GetDetectionsOutput, error) {
	if _, ok := uc.cfg.Wikis[ip.WikiID]; !ok {
		return detection.GetDetectionsOutput{}, detection.ErrWikiNotConfigured
	}

	day := uc.now().UTC()
	if ip.Date != "" {
		d, err := util.ParseDateUTC(ip.Date)
		if err != nil {
			return detection.GetDetectionsOutput{}, detection.ErrInvalidDate
		}
		day = d
	}
	from, to := util.DayRangeUTC(day)

	ip.PagQuery.Adjust()
	items, pag, err := uc.repo.GetReportedHostnames(ctx, repository.GetReportedHostnamesOptions{
		WikiID: ip.WikiID,
		From:   from,
		To:     to,
		Limit:  ip.PagQuery.Limit,
		Offset: ip.PagQuery.Offset(),
		Page:   ip.PagQuery.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.GetDetections: %v", err)
		return detection.GetDetectionsOutput{}, err
	}
	return detection.GetDetectionsOutput{Detections: items, Pagination: pag}, nil
}

func (uc *implUseCase) ListDetections(ctx context.Context, ip detection.ListDetectionsInput) ([]model.ReportedHostname, error) {
	items, err := uc.repo.ListReportedHostnames(ctx, repository.ListReportedHostnamesOptions{
		WikiID: ip.WikiID,
		From:   ip.From,
		To:     ip.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.ListDetections: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *implUseCase) HasDetections(ctx context.Context, ip detection.HasDetectionsInput) (bool, error) {
	exists, err := uc.repo.ExistsReportedHostname(ctx, repository.ExistsReportedHostnameOptions{
		WikiID: ip.WikiID,
		From:   ip.From,
		To:     ip.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.HasDetections: %v", err)
		return false, err
	}
	return exists, nil
}

func (uc *implUseCase) CheckHostnames(ctx context.Context, ip detection.CheckHostnamesInput) ([]detection.HostnameCheck, error) {
	if len(ip.Hostnames) == 0 {
		return []detection.HostnameCheck{}, nil
	}

	results, err := uc.repo.CheckIgnoredHostnames(ctx, repository.CheckIgnoredHostnamesOptions{
		WikiID:    ip.WikiID,
		Hostnames: ip.Hostnames,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.CheckHostnames: %v", err)
		return nil, err
	}

	checks := make([]detection.HostnameCheck, 0, len(results))
	for _, r := range results {
		checks = append(checks, detection.HostnameCheck{Hostname: r.Hostname, Existed: r.Existed})
	}
	return checks, nil
}

func (uc *implUseCase) IsIgnored(ctx context.Context, ip detection.IsIgnoredInput) (bool, error) {
	exists, err := uc.repo.ExistsIgnoredHostname(ctx, repository.ExistsIgnoredHostnameOptions{
		WikiID:   ip.WikiID,
		Hostname: ip.Hostname,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.IsIgnored: %v", err)
		return false, err
	}
	return exists, nil
}

// IgnoreHostname adds a hostname to the wiki's ignore list. Ignoring an
// already ignored hostname succeeds with Created false.
func (uc *implUseCase) IgnoreHostname(ctx context.Context, ip detection.IgnoreHostnameInput) (detection.IgnoreHostnameOutput, error) {
	h := strings.ToLower(strings.TrimSpace(ip.Hostname))
	if h == "" {
		return detection.IgnoreHostnameOutput{}, detection.ErrEmptyHostname
	}

	ih, err := uc.repo.CreateIgnoredHostname(ctx, repository.CreateIgnoredHostnameOptions{WikiID: ip.WikiID, Hostname: h})
	if errors.Is(err, repository.ErrAlreadyExists) {
		return detection.IgnoreHostnameOutput{
			Hostname: model.IgnoredHostname{WikiID: ip.WikiID, Hostname: h},
		}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.IgnoreHostname: %v", err)
		return detection.IgnoreHostnameOutput{}, err
	}
	return detection.IgnoreHostnameOutput{Hostname: ih, Created: true}, nil
}

func (uc *implUseCase) GetIgnoredHostnames(ctx context.Context, ip detection.GetIgnoredHostnamesInput) (detection.GetIgnoredHostnamesOutput, error) {
	if _, ok := uc.cfg.Wikis[ip.WikiID]; !ok {
		return detection.GetIgnoredHostnamesOutput{}, detection.ErrWikiNotConfigured
	}

	ip.PagQuery.Adjust()
	items, pag, err := uc.repo.GetIgnoredHostnames(ctx, repository.GetIgnoredHostnamesOptions{
		WikiID: ip.WikiID,
		Limit:  ip.PagQuery.Limit,
		Offset: ip.PagQuery.Offset(),
		Page:   ip.PagQuery.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.GetIgnoredHostnames: %v", err)
		return detection.GetIgnoredHostnamesOutput{}, err
	}
	return detection.GetIgnoredHostnamesOutput{Hostnames: items, Pagination: pag}, nil
}
