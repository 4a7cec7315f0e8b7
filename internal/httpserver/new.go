package httpserver

import (
	"errors"

	"citron-srv/internal/core"
	"citron-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	internalKey string

	// Infrastructure clients and configuration
	infra core.Infra
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	InternalKey string

	// Infrastructure clients and configuration
	Infra core.Infra
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		internalKey: cfg.InternalKey,
		infra:       cfg.Infra,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.internalKey == "" {
		return errors.New("internal key is required")
	}
	if srv.infra.PostgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.infra.RedisClient == nil {
		return errors.New("redisClient is required")
	}
	return nil
}
