package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:         cfg.Logger,
		infra:     cfg.Infra,
		opsPort:   cfg.OpsPort,
		streamCfg: cfg.Stream,
		jobsCfg:   cfg.Jobs,
		userAgent: cfg.UserAgent,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.infra.PostgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.infra.RedisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.opsPort <= 0 {
		return fmt.Errorf("ops port is required")
	}
	if srv.userAgent == "" {
		return fmt.Errorf("user agent is required")
	}
	return nil
}
