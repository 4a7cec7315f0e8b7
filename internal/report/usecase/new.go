package usecase

import (
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/internal/report/repository"
	"citron-srv/pkg/discord"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/minio"
	"citron-srv/pkg/wiki"
)

const (
	DefaultPagePrefix  = "Project:Citron/Spam"
	DefaultVersion     = 1
	DefaultConcurrency = 4
)

// Config holds the report page layout and job fan-out.
type Config struct {
	Wikis         map[string]model.Wiki
	PagePrefix    string
	Version       int
	ArchiveBucket string
	Concurrency   int
}

type implUseCase struct {
	l           log.Logger
	repo        repository.PostgresRepository
	detectionUC detection.UseCase
	wikis       wiki.Clients
	minio       minio.MinIO
	discord     discord.IDiscord
	metrics     *metrics.Metrics
	cfg         Config
	now         func() time.Time
}

// New creates the report usecase. minioClient, d and m may be nil; without
// minioClient reports are not archived.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	detectionUC detection.UseCase,
	wikis wiki.Clients,
	minioClient minio.MinIO,
	d discord.IDiscord,
	m *metrics.Metrics,
	cfg Config,
) report.UseCase {
	if cfg.PagePrefix == "" {
		cfg.PagePrefix = DefaultPagePrefix
	}
	if cfg.Version <= 0 {
		cfg.Version = DefaultVersion
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.ArchiveBucket == "" && minioClient != nil {
		cfg.ArchiveBucket = minioClient.DefaultBucket()
	}

	return &implUseCase{
		l:           l,
		repo:        repo,
		detectionUC: detectionUC,
		wikis:       wikis,
		minio:       minioClient,
		discord:     d,
		metrics:     m,
		cfg:         cfg,
		now:         time.Now,
	}
}
