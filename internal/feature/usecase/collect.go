package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"citron-srv/internal/feature"
	"citron-srv/internal/feature/repository"
	"citron-srv/pkg/hostname"

	"golang.org/x/sync/errgroup"
)

// unavailableRank is reported for missing ranks and failed page rank lookups.
const unavailableRank = -1

func (uc *implUseCase) Collect(ctx context.Context, input feature.CollectInput) (feature.HostnameFeature, error) {
	if input.Hostname == "" {
		uc.l.Errorf(ctx, "feature.usecase.Collect: empty hostname")
		return feature.HostnameFeature{}, feature.ErrEmptyHostname
	}

	if f, ok := uc.cache.Get(input.Hostname); ok {
		return f, nil
	}

	f := uc.build(ctx, input.Hostname)
	uc.cache.Add(input.Hostname, f)
	return f, nil
}

func (uc *implUseCase) CollectMany(ctx context.Context, input feature.CollectManyInput) ([]feature.HostnameFeature, error) {
	results := make([]feature.HostnameFeature, len(input.Hostnames))
	if len(input.Hostnames) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Concurrency)
	for i, h := range input.Hostnames {
		g.Go(func() error {
			f, err := uc.Collect(gctx, feature.CollectInput{Hostname: h})
			if err != nil {
				return err
			}
			results[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "feature.usecase.CollectMany: %v", err)
		return nil, err
	}
	return results, nil
}

func (uc *implUseCase) build(ctx context.Context, h string) feature.HostnameFeature {
	d := hostname.Decompose(h)
	t := uc.tables
	pageRank := uc.pageRank(ctx, h)

	f := feature.HostnameFeature{
		Hostname:                 h,
		OpenPageRank:             pageRank,
		OpenPageRankAvailable:    pageRank != unavailableRank,
		CloudflareRadarAvailable: feature.Has(t.CloudflareRadarDomains, d.TopDomain),
		HasSpecialWord:           containsAny(h, t.SpecialWords),
		CommercialTLD:            feature.Has(t.CommercialTLDs, d.Suffix),
		EntertainmentTLD:         feature.Has(t.EntertainmentTLDs, d.Suffix),
		GamblingTLD:              feature.Has(t.GamblingTLDs, d.Suffix),
		SuspiciousTLD:            feature.Has(t.SuspiciousTLDs, d.Suffix),
		HostnameLength:           utf8.RuneCountInString(h),
		DotCount:                 hostname.CountDots(h),
		DigitCount:               hostname.CountDigits(h),
		IsIPv4:                   hostname.IsIPv4(h),
		IsTopDomain:              d.TopDomain == h,
		IsTopPrivateDomain:       d.TopPrivateDomain == h,
	}
	f.AkaRank, f.AkaRankAvailable = feature.Rank(t.AkaRanks, d.TopPrivateDomain)
	f.TrancoRank, f.TrancoRankAvailable = feature.Rank(t.TrancoRanks, d.TopDomain)
	f.MajesticMillionRank, f.MajesticMillionRankAvailable = feature.Rank(t.MajesticMillionRanks, d.TopPrivateDomain)
	return f
}

// pageRank never fails: a zero rank or any lookup error yields -1.
func (uc *implUseCase) pageRank(ctx context.Context, h string) float64 {
	if uc.repo != nil {
		rank, ok, err := uc.repo.GetPageRank(ctx, repository.GetPageRankOptions{Hostname: h})
		if err != nil {
			uc.l.Warnf(ctx, "feature.usecase.pageRank: cache read failed for %s: %v", h, err)
		} else if ok {
			return normalizeRank(rank)
		}
	}

	if uc.opr == nil {
		return unavailableRank
	}

	rank, err := uc.opr.GetPageRank(ctx, h)
	if err != nil {
		uc.l.Errorf(ctx, "feature.usecase.pageRank: unable to get page rank for %s: %v", h, err)
		if uc.metrics != nil {
			uc.metrics.PageRankFailures.Inc()
		}
		return unavailableRank
	}

	if uc.repo != nil {
		if err := uc.repo.SavePageRank(ctx, repository.SavePageRankOptions{
			Hostname: h,
			Rank:     rank,
			TTL:      uc.cfg.PageRankTTL,
		}); err != nil {
			uc.l.Warnf(ctx, "feature.usecase.pageRank: cache write failed for %s: %v", h, err)
		}
	}
	return normalizeRank(rank)
}

func normalizeRank(rank float64) float64 {
	if rank == 0 {
		return unavailableRank
	}
	return rank
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
