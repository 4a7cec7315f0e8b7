package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Postgres:   PostgresConfig{Host: "db", Port: 5432, User: "citron", DBName: "citron"},
		Redis:      RedisConfig{Host: "cache", Port: 6379},
		Wiki:       WikiConfig{UserAgent: "Citron/1.0"},
		Wikis:      []WikiSiteConfig{{WikiID: "zhwiki", ServerName: "zh.wikipedia.org"}},
		Classifier: ClassifierConfig{Models: []ModelConfig{{ID: "default", Number: 1, Path: "model.json"}}},
		Feature:    FeatureConfig{OpenPageRankKey: "key"},
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(cfg *Config)
		wantErr string
	}{
		"valid": {
			mutate: func(cfg *Config) {},
		},
		"missing postgres host": {
			mutate:  func(cfg *Config) { cfg.Postgres.Host = "" },
			wantErr: "postgres.host",
		},
		"no wikis": {
			mutate:  func(cfg *Config) { cfg.Wikis = nil },
			wantErr: "at least one wiki",
		},
		"duplicate wiki": {
			mutate: func(cfg *Config) {
				cfg.Wikis = append(cfg.Wikis, WikiSiteConfig{WikiID: "zhwiki", ServerName: "zh.wikipedia.org"})
			},
			wantErr: "duplicate wiki_id",
		},
		"no models": {
			mutate:  func(cfg *Config) { cfg.Classifier.Models = nil },
			wantErr: "classifier.models",
		},
		"kafka without brokers": {
			mutate:  func(cfg *Config) { cfg.Kafka = KafkaConfig{Enabled: true} },
			wantErr: "kafka.brokers",
		},
		"minio without credentials": {
			mutate:  func(cfg *Config) { cfg.MinIO = MinIOConfig{Enabled: true, Endpoint: "s3", Bucket: "b"} },
			wantErr: "minio credentials",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error mismatch: got %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}
