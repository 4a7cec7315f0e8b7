package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	OpsServer  OpsServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Detections, ignore list, feedback
	Postgres PostgresConfig

	// Redis - Page rank and user group caches
	Redis RedisConfig

	// Kafka - Detection events (optional)
	Kafka KafkaConfig

	// MinIO - Report archive (optional)
	MinIO MinIOConfig

	// Wiki access and report layout
	Wiki   WikiConfig
	Wikis  []WikiSiteConfig
	Stream StreamConfig

	// Detection pipeline
	Classifier ClassifierConfig
	Feature    FeatureConfig
	Suffix     SuffixConfig
	Cache      CacheConfig

	// Scheduled report jobs
	Jobs JobsConfig

	InternalConfig InternalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the admin API server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// OpsServerConfig is the health and metrics listener of the consumer.
type OpsServerConfig struct {
	Port int
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	Topic    string
	ClientID string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// WikiConfig holds the settings shared by every wiki client.
type WikiConfig struct {
	UserAgent        string
	Username         string
	Password         string
	Timeout          time.Duration
	Retries          int
	RetryWait        time.Duration
	RetryJitter      time.Duration
	ReportPagePrefix string
	ReportVersion    int
}

// WikiSiteConfig is one monitored wiki.
type WikiSiteConfig struct {
	WikiID              string   `mapstructure:"wiki_id"`
	ServerName          string   `mapstructure:"server_name"`
	IgnoredUserGroups   []string `mapstructure:"ignored_user_groups"`
	Model               string   `mapstructure:"model"`
	AnnouncementPage    string   `mapstructure:"announcement_page"`
	AnnouncementSection string   `mapstructure:"announcement_section"`
}

// StreamConfig is the configuration of the recent changes ingestor.
type StreamConfig struct {
	URL              string
	Window           time.Duration
	WatchdogInterval time.Duration
	MinBackoff       time.Duration
	MaxBackoff       time.Duration
	Workers          int
	QueueSize        int
}

// ModelConfig points at one tree-ensemble model file.
type ModelConfig struct {
	ID     string `mapstructure:"id"`
	Number int    `mapstructure:"number"`
	Path   string `mapstructure:"path"`
}

type ClassifierConfig struct {
	Models       []ModelConfig
	DefaultModel string
}

// FeatureConfig lists the lookup tables and the OpenPageRank account.
type FeatureConfig struct {
	AkaRanks               string
	TrancoRanks            string
	MajesticMillionRanks   string
	CloudflareRadarDomains string
	SpecialWords           string
	CommercialTLDs         string
	EntertainmentTLDs      string
	GamblingTLDs           string
	SuspiciousTLDs         string
	OpenPageRankKey        string
	OpenPageRankURL        string
	Concurrency            int
}

type SuffixConfig struct {
	IgnoredSuffixes string
}

// CacheConfig bounds the in-process and Redis caches.
type CacheConfig struct {
	FeatureSize   int
	FeatureTTL    time.Duration
	PageRankTTL   time.Duration
	UserGroupsTTL time.Duration
}

// JobConfig enables one scheduled job.
type JobConfig struct {
	Enabled bool
	Spec    string
}

type JobsConfig struct {
	Reconcile   JobConfig
	Announce    JobConfig
	Sync        JobConfig
	Concurrency int
	RunTimeout  time.Duration
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth. Empty disables the admin API.
	InternalKey string
}

// Load loads configuration using Viper. A .env file in the working directory
// is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("citron-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/citron/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.OpsServer.Port = viper.GetInt("ops_server.port")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// MinIO
	cfg.MinIO.Enabled = viper.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Wiki
	cfg.Wiki.UserAgent = viper.GetString("wiki.user_agent")
	cfg.Wiki.Username = viper.GetString("wiki.username")
	cfg.Wiki.Password = viper.GetString("wiki.password")
	cfg.Wiki.Timeout = viper.GetDuration("wiki.timeout")
	cfg.Wiki.Retries = viper.GetInt("wiki.retries")
	cfg.Wiki.RetryWait = viper.GetDuration("wiki.retry_wait")
	cfg.Wiki.RetryJitter = viper.GetDuration("wiki.retry_jitter")
	cfg.Wiki.ReportPagePrefix = viper.GetString("wiki.report_page_prefix")
	cfg.Wiki.ReportVersion = viper.GetInt("wiki.report_version")
	if err := viper.UnmarshalKey("wikis", &cfg.Wikis); err != nil {
		return nil, fmt.Errorf("error reading wikis: %w", err)
	}

	// Stream
	cfg.Stream.URL = viper.GetString("stream.url")
	cfg.Stream.Window = viper.GetDuration("stream.window")
	cfg.Stream.WatchdogInterval = viper.GetDuration("stream.watchdog_interval")
	cfg.Stream.MinBackoff = viper.GetDuration("stream.min_backoff")
	cfg.Stream.MaxBackoff = viper.GetDuration("stream.max_backoff")
	cfg.Stream.Workers = viper.GetInt("stream.workers")
	cfg.Stream.QueueSize = viper.GetInt("stream.queue_size")

	// Classifier
	if err := viper.UnmarshalKey("classifier.models", &cfg.Classifier.Models); err != nil {
		return nil, fmt.Errorf("error reading classifier.models: %w", err)
	}
	cfg.Classifier.DefaultModel = viper.GetString("classifier.default_model")

	// Feature tables
	cfg.Feature.AkaRanks = viper.GetString("feature.aka_ranks")
	cfg.Feature.TrancoRanks = viper.GetString("feature.tranco_ranks")
	cfg.Feature.MajesticMillionRanks = viper.GetString("feature.majestic_million_ranks")
	cfg.Feature.CloudflareRadarDomains = viper.GetString("feature.cloudflare_radar_domains")
	cfg.Feature.SpecialWords = viper.GetString("feature.special_words")
	cfg.Feature.CommercialTLDs = viper.GetString("feature.commercial_tlds")
	cfg.Feature.EntertainmentTLDs = viper.GetString("feature.entertainment_tlds")
	cfg.Feature.GamblingTLDs = viper.GetString("feature.gambling_tlds")
	cfg.Feature.SuspiciousTLDs = viper.GetString("feature.suspicious_tlds")
	cfg.Feature.OpenPageRankKey = viper.GetString("feature.open_page_rank_key")
	cfg.Feature.OpenPageRankURL = viper.GetString("feature.open_page_rank_url")
	cfg.Feature.Concurrency = viper.GetInt("feature.concurrency")
	cfg.Suffix.IgnoredSuffixes = viper.GetString("suffix.ignored_suffixes")

	// Caches
	cfg.Cache.FeatureSize = viper.GetInt("cache.feature_size")
	cfg.Cache.FeatureTTL = viper.GetDuration("cache.feature_ttl")
	cfg.Cache.PageRankTTL = viper.GetDuration("cache.page_rank_ttl")
	cfg.Cache.UserGroupsTTL = viper.GetDuration("cache.user_groups_ttl")

	// Jobs
	cfg.Jobs.Reconcile.Enabled = viper.GetBool("jobs.reconcile.enabled")
	cfg.Jobs.Reconcile.Spec = viper.GetString("jobs.reconcile.spec")
	cfg.Jobs.Announce.Enabled = viper.GetBool("jobs.announce.enabled")
	cfg.Jobs.Announce.Spec = viper.GetString("jobs.announce.spec")
	cfg.Jobs.Sync.Enabled = viper.GetBool("jobs.sync.enabled")
	cfg.Jobs.Sync.Spec = viper.GetString("jobs.sync.spec")
	cfg.Jobs.Concurrency = viper.GetInt("jobs.concurrency")
	cfg.Jobs.RunTimeout = viper.GetDuration("jobs.run_timeout")

	// Internal auth key
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("ops_server.port", 9090)

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "citron")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "citron.spam.detections")
	viper.SetDefault("kafka.client_id", "citron-srv")

	// 4. MinIO
	viper.SetDefault("minio.enabled", false)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "citron-reports")

	// 5. Wiki
	viper.SetDefault("wiki.user_agent", "Citron/1.0 (https://github.com/citron-srv)")
	viper.SetDefault("wiki.timeout", "30s")
	viper.SetDefault("wiki.retries", 5)
	viper.SetDefault("wiki.retry_wait", "800ms")
	viper.SetDefault("wiki.retry_jitter", "200ms")
	viper.SetDefault("wiki.report_page_prefix", "Project:Citron/Spam")
	viper.SetDefault("wiki.report_version", 1)

	// 6. Stream
	viper.SetDefault("stream.url", "https://stream.wikimedia.org/v2/stream/recentchange")
	viper.SetDefault("stream.window", "5m")
	viper.SetDefault("stream.watchdog_interval", "5m")
	viper.SetDefault("stream.min_backoff", "1s")
	viper.SetDefault("stream.max_backoff", "2m")
	viper.SetDefault("stream.workers", 8)
	viper.SetDefault("stream.queue_size", 256)

	// 7. Feature + caches
	viper.SetDefault("feature.aka_ranks", "data/aka_ranks.csv")
	viper.SetDefault("feature.tranco_ranks", "data/tranco_ranks.csv")
	viper.SetDefault("feature.majestic_million_ranks", "data/majestic_million_ranks.csv")
	viper.SetDefault("feature.cloudflare_radar_domains", "data/cloudflare_radar_domains.csv")
	viper.SetDefault("feature.special_words", "data/special_words.csv")
	viper.SetDefault("feature.commercial_tlds", "data/commercial_tlds.csv")
	viper.SetDefault("feature.entertainment_tlds", "data/entertainment_tlds.csv")
	viper.SetDefault("feature.gambling_tlds", "data/gambling_tlds.csv")
	viper.SetDefault("feature.suspicious_tlds", "data/suspicious_tlds.csv")
	viper.SetDefault("feature.concurrency", 8)
	viper.SetDefault("suffix.ignored_suffixes", "data/ignored_suffixes.csv")
	viper.SetDefault("cache.feature_size", 10000)
	viper.SetDefault("cache.feature_ttl", "1h")
	viper.SetDefault("cache.page_rank_ttl", "24h")
	viper.SetDefault("cache.user_groups_ttl", "1h")

	// 8. Jobs
	viper.SetDefault("jobs.reconcile.enabled", true)
	viper.SetDefault("jobs.reconcile.spec", "59 59 * * * *")
	viper.SetDefault("jobs.announce.enabled", true)
	viper.SetDefault("jobs.announce.spec", "59 59 * * * *")
	viper.SetDefault("jobs.sync.enabled", true)
	viper.SetDefault("jobs.sync.spec", "5 0 0 * * *")
	viper.SetDefault("jobs.concurrency", 4)
	viper.SetDefault("jobs.run_timeout", "30m")
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}

	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required when minio is enabled")
		}
		if cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio credentials are required when minio is enabled")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required when minio is enabled")
		}
	}

	if cfg.Wiki.UserAgent == "" {
		return fmt.Errorf("wiki.user_agent is required")
	}
	if len(cfg.Wikis) == 0 {
		return fmt.Errorf("at least one wiki must be configured")
	}
	seen := make(map[string]bool, len(cfg.Wikis))
	for i, w := range cfg.Wikis {
		if w.WikiID == "" || w.ServerName == "" {
			return fmt.Errorf("wikis[%d]: wiki_id and server_name are required", i)
		}
		if seen[w.WikiID] {
			return fmt.Errorf("wikis[%d]: duplicate wiki_id %s", i, w.WikiID)
		}
		seen[w.WikiID] = true
	}

	if len(cfg.Classifier.Models) == 0 {
		return fmt.Errorf("classifier.models must have at least one model")
	}
	if cfg.Feature.OpenPageRankKey == "" {
		return fmt.Errorf("feature.open_page_rank_key is required")
	}

	return nil
}
