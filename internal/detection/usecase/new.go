package usecase

import (
	"time"

	"citron-srv/internal/classifier"
	"citron-srv/internal/detection"
	"citron-srv/internal/detection/repository"
	"citron-srv/internal/feature"
	"citron-srv/internal/model"
	"citron-srv/pkg/hostname"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/wiki"
)

// DefaultUserGroupsTTL bounds how long a user's groups are trusted.
const DefaultUserGroupsTTL = time.Hour

type Config struct {
	Wikis         map[string]model.Wiki
	UserGroupsTTL time.Duration
}

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	cache      repository.CacheRepository
	wikis      wiki.Clients
	suffixes   *hostname.SuffixSet
	featureUC  feature.UseCase
	classifyUC classifier.UseCase
	publisher  detection.Publisher
	metrics    *metrics.Metrics
	cfg        Config
	now        func() time.Time
}

// New creates the detection usecase. publisher and m may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	cache repository.CacheRepository,
	wikis wiki.Clients,
	suffixes *hostname.SuffixSet,
	featureUC feature.UseCase,
	classifyUC classifier.UseCase,
	publisher detection.Publisher,
	m *metrics.Metrics,
	cfg Config,
) detection.UseCase {
	if cfg.UserGroupsTTL <= 0 {
		cfg.UserGroupsTTL = DefaultUserGroupsTTL
	}
	if suffixes == nil {
		suffixes = hostname.NewSuffixSet()
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		cache:      cache,
		wikis:      wikis,
		suffixes:   suffixes,
		featureUC:  featureUC,
		classifyUC: classifyUC,
		publisher:  publisher,
		metrics:    m,
		cfg:        cfg,
		now:        time.Now,
	}
}
