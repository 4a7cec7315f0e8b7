package core

import (
	"context"

	"citron-srv/config"
	kafkaConn "citron-srv/config/kafka"
	minioConn "citron-srv/config/minio"
	postgreConn "citron-srv/config/postgre"
	redisConn "citron-srv/config/redis"
	"citron-srv/pkg/discord"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
)

// Connect opens every configured client and returns them with a cleanup
// that closes them in reverse order. Kafka, MinIO and Discord are optional.
func Connect(ctx context.Context, cfg *config.Config, l log.Logger) (Infra, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Infra, func(), error) {
		cleanup()
		return Infra{}, func() {}, err
	}

	postgresDB, err := postgreConn.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() {
		if err := postgreConn.Disconnect(); err != nil {
			l.Errorf(ctx, "Failed to close PostgreSQL: %v", err)
		}
	})
	l.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := redisConn.Connect(ctx, cfg.Redis)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() {
		if err := redisConn.Disconnect(); err != nil {
			l.Errorf(ctx, "Failed to close Redis: %v", err)
		}
	})
	l.Info(ctx, "Redis client initialized")

	kafkaProducer, err := kafkaConn.ConnectProducer(cfg.Kafka)
	if err != nil {
		return fail(err)
	}
	if kafkaProducer != nil {
		closers = append(closers, func() {
			if err := kafkaConn.DisconnectProducer(); err != nil {
				l.Errorf(ctx, "Failed to close Kafka producer: %v", err)
			}
		})
		l.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	minioClient, err := minioConn.Connect(ctx, cfg.MinIO)
	if err != nil {
		return fail(err)
	}
	if minioClient != nil {
		closers = append(closers, func() {
			if err := minioConn.Disconnect(); err != nil {
				l.Errorf(ctx, "Failed to close MinIO: %v", err)
			}
		})
		l.Infof(ctx, "MinIO client initialized for bucket %s", cfg.MinIO.Bucket)
	}

	discordClient, err := discord.New(l, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		l.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	return Infra{
		Config:        cfg,
		Logger:        l,
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		MinIOClient:   minioClient,
		Discord:       discordClient,
		Metrics:       metrics.Default(),
	}, cleanup, nil
}
