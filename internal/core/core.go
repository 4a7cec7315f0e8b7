// Package core assembles the domain usecases shared by the API, the consumer
// and the CLI.
package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"citron-srv/config"
	"citron-srv/internal/classifier"
	classifierUsecase "citron-srv/internal/classifier/usecase"
	"citron-srv/internal/detection"
	detectionProducer "citron-srv/internal/detection/delivery/kafka/producer"
	detectionPostgre "citron-srv/internal/detection/repository/postgre"
	detectionRedis "citron-srv/internal/detection/repository/redis"
	detectionUsecase "citron-srv/internal/detection/usecase"
	"citron-srv/internal/feature"
	featureRedis "citron-srv/internal/feature/repository/redis"
	featureUsecase "citron-srv/internal/feature/usecase"
	"citron-srv/internal/model"
	"citron-srv/internal/report"
	reportPostgre "citron-srv/internal/report/repository/postgre"
	reportUsecase "citron-srv/internal/report/usecase"
	"citron-srv/pkg/discord"
	"citron-srv/pkg/hostname"
	pkgHttp "citron-srv/pkg/http"
	pkgKafka "citron-srv/pkg/kafka"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/minio"
	"citron-srv/pkg/openpagerank"
	pkgRedis "citron-srv/pkg/redis"
	"citron-srv/pkg/wiki"
)

// Infra holds the connected clients. KafkaProducer, MinIOClient and Discord
// may be nil.
type Infra struct {
	Config        *config.Config
	Logger        log.Logger
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer
	MinIOClient   minio.MinIO
	Discord       discord.IDiscord
	Metrics       *metrics.Metrics
}

// Domains are the wired usecases.
type Domains struct {
	Wikis       map[string]model.Wiki
	WikiClients *wiki.Registry
	Feature     feature.UseCase
	Classifier  classifier.UseCase
	Detection   detection.UseCase
	Report      report.UseCase
}

func (in Infra) validate() error {
	if in.Config == nil {
		return errors.New("config is required")
	}
	if in.Logger == nil {
		return errors.New("logger is required")
	}
	if in.PostgresDB == nil {
		return errors.New("postgres db is required")
	}
	if in.RedisClient == nil {
		return errors.New("redis client is required")
	}
	return nil
}

// Setup loads the static inputs (models, tables, suffix list) and wires every
// domain from repositories up to usecases.
func Setup(ctx context.Context, in Infra) (*Domains, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cfg := in.Config
	m := in.Metrics

	wikis := Wikis(cfg.Wikis)
	registry := wiki.NewRegistry(wiki.RegistryConfig{
		HTTP: pkgHttp.ClientConfig{
			Timeout:     cfg.Wiki.Timeout,
			Retries:     cfg.Wiki.Retries,
			RetryWait:   cfg.Wiki.RetryWait,
			RetryJitter: cfg.Wiki.RetryJitter,
			UserAgent:   cfg.Wiki.UserAgent,
			CookieJar:   true,
		},
		Username: cfg.Wiki.Username,
		Password: cfg.Wiki.Password,
	})

	// Feature
	tables, err := feature.LoadTables(feature.TablesConfig{
		AkaRanks:               cfg.Feature.AkaRanks,
		TrancoRanks:            cfg.Feature.TrancoRanks,
		MajesticMillionRanks:   cfg.Feature.MajesticMillionRanks,
		CloudflareRadarDomains: cfg.Feature.CloudflareRadarDomains,
		SpecialWords:           cfg.Feature.SpecialWords,
		CommercialTLDs:         cfg.Feature.CommercialTLDs,
		EntertainmentTLDs:      cfg.Feature.EntertainmentTLDs,
		GamblingTLDs:           cfg.Feature.GamblingTLDs,
		SuspiciousTLDs:         cfg.Feature.SuspiciousTLDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load feature tables: %w", err)
	}
	opr, err := openpagerank.New(pkgHttp.NewClient(pkgHttp.ClientConfig{
		Timeout:     cfg.Wiki.Timeout,
		Retries:     cfg.Wiki.Retries,
		RetryWait:   cfg.Wiki.RetryWait,
		RetryJitter: cfg.Wiki.RetryJitter,
		UserAgent:   cfg.Wiki.UserAgent,
	}), cfg.Feature.OpenPageRankKey, cfg.Feature.OpenPageRankURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenPageRank client: %w", err)
	}
	featureUC := featureUsecase.New(featureRedis.New(in.RedisClient, in.Logger), tables, opr, m, featureUsecase.Config{
		CacheSize:   cfg.Cache.FeatureSize,
		CacheTTL:    cfg.Cache.FeatureTTL,
		PageRankTTL: cfg.Cache.PageRankTTL,
		Concurrency: cfg.Feature.Concurrency,
	}, in.Logger)

	// Classifier
	modelCfgs := make([]classifierUsecase.ModelConfig, 0, len(cfg.Classifier.Models))
	for _, mc := range cfg.Classifier.Models {
		modelCfgs = append(modelCfgs, classifierUsecase.ModelConfig{ID: mc.ID, Number: mc.Number, Path: mc.Path})
	}
	models, err := classifierUsecase.LoadModels(modelCfgs)
	if err != nil {
		return nil, err
	}
	classifierUC, err := classifierUsecase.New(models, cfg.Classifier.DefaultModel, in.Logger)
	if err != nil {
		return nil, err
	}

	// Detection
	suffixes := hostname.NewSuffixSet()
	if cfg.Suffix.IgnoredSuffixes != "" {
		if suffixes, err = hostname.LoadSuffixSet(cfg.Suffix.IgnoredSuffixes); err != nil {
			return nil, fmt.Errorf("failed to load ignored suffixes: %w", err)
		}
	}
	var publisher detection.Publisher
	if in.KafkaProducer != nil {
		publisher = detectionProducer.New(in.Logger, in.KafkaProducer)
	}
	detectionUC := detectionUsecase.New(
		in.Logger,
		detectionPostgre.New(in.PostgresDB, in.Logger),
		detectionRedis.New(in.RedisClient, in.Logger),
		registry,
		suffixes,
		featureUC,
		classifierUC,
		publisher,
		m,
		detectionUsecase.Config{Wikis: wikis, UserGroupsTTL: cfg.Cache.UserGroupsTTL},
	)

	// Report
	reportUC := reportUsecase.New(
		in.Logger,
		reportPostgre.New(in.PostgresDB, in.Logger),
		detectionUC,
		registry,
		in.MinIOClient,
		in.Discord,
		m,
		reportUsecase.Config{
			Wikis:         wikis,
			PagePrefix:    cfg.Wiki.ReportPagePrefix,
			Version:       cfg.Wiki.ReportVersion,
			ArchiveBucket: cfg.MinIO.Bucket,
			Concurrency:   cfg.Jobs.Concurrency,
		},
	)

	in.Logger.Infof(ctx, "Core domains initialized: %d wikis, %d models, %d ignored suffixes",
		len(wikis), len(models), suffixes.Len())

	return &Domains{
		Wikis:       wikis,
		WikiClients: registry,
		Feature:     featureUC,
		Classifier:  classifierUC,
		Detection:   detectionUC,
		Report:      reportUC,
	}, nil
}

// Wikis indexes the configured wikis by id.
func Wikis(sites []config.WikiSiteConfig) map[string]model.Wiki {
	wikis := make(map[string]model.Wiki, len(sites))
	for _, s := range sites {
		wikis[s.WikiID] = model.Wiki{
			ID:                  s.WikiID,
			ServerName:          s.ServerName,
			IgnoredUserGroups:   s.IgnoredUserGroups,
			ModelID:             s.Model,
			AnnouncementPage:    s.AnnouncementPage,
			AnnouncementSection: s.AnnouncementSection,
		}
	}
	return wikis
}
