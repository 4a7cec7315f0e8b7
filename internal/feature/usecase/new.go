package usecase

import (
	"time"

	"citron-srv/internal/feature"
	"citron-srv/internal/feature/repository"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/openpagerank"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize   = 10000
	DefaultCacheTTL    = 6 * time.Hour
	DefaultConcurrency = 4
)

// Config bounds the in-process feature cache and the page rank cache.
type Config struct {
	CacheSize   int
	CacheTTL    time.Duration
	PageRankTTL time.Duration
	Concurrency int
}

type implUseCase struct {
	repo    repository.Repository
	tables  *feature.Tables
	opr     openpagerank.Client
	cache   *expirable.LRU[string, feature.HostnameFeature]
	metrics *metrics.Metrics
	cfg     Config
	l       log.Logger
}

// New creates the feature collector. opr may be nil, in which case every page
// rank is reported as unavailable.
func New(repo repository.Repository, tables *feature.Tables, opr openpagerank.Client, m *metrics.Metrics, cfg Config, l log.Logger) feature.UseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &implUseCase{
		repo:    repo,
		tables:  tables,
		opr:     opr,
		cache:   expirable.NewLRU[string, feature.HostnameFeature](cfg.CacheSize, nil, cfg.CacheTTL),
		metrics: m,
		cfg:     cfg,
		l:       l,
	}
}
