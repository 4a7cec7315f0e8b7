package consumer

import (
	"fmt"
	"net/http"
	"time"

	kafkaConn "citron-srv/config/kafka"
	minioConn "citron-srv/config/minio"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const opsShutdownTimeout = 10 * time.Second

// newOpsServer serves health probes and Prometheus metrics.
func (srv *ConsumerServer) newOpsServer() *http.Server {
	r := gin.New()
	r.GET("/health", srv.healthCheck)
	r.GET("/live", srv.healthCheck)
	r.GET("/ready", srv.readyCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.opsPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (srv *ConsumerServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": "citron-consumer"})
}

// readyCheck reports not ready while a required dependency is unreachable.
func (srv *ConsumerServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	checks := []struct {
		name  string
		check func() error
	}{
		{"database", func() error { return srv.infra.PostgresDB.PingContext(ctx) }},
		{"redis", func() error { return srv.infra.RedisClient.Ping(ctx) }},
		{"kafka", kafkaConn.ProducerHealthCheck},
		{"minio", func() error { return minioConn.HealthCheck(ctx) }},
	}

	status := gin.H{}
	for _, ch := range checks {
		if err := ch.check(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": ch.name + " check failed",
				"error":   err.Error(),
			})
			return
		}
		status[ch.name] = "ok"
	}
	status["status"] = "ready"
	response.OK(c, status)
}
