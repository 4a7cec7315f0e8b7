package httpserver

import (
	"context"
	"fmt"

	classifierHTTP "citron-srv/internal/classifier/delivery/http"
	"citron-srv/internal/core"
	detectionHTTP "citron-srv/internal/detection/delivery/http"
	"citron-srv/internal/middleware"
	reportHTTP "citron-srv/internal/report/delivery/http"
	"citron-srv/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.internalKey)

	srv.gin.Use(middleware.Recovery(srv.l, srv.infra.Discord))
	srv.registerSystemRoutes()

	domains, err := core.Setup(ctx, srv.infra)
	if err != nil {
		return fmt.Errorf("failed to setup domains: %w", err)
	}

	api := srv.gin.Group("/api/v1")
	detectionHTTP.New(srv.l, domains.Detection, srv.infra.Discord).RegisterRoutes(api, mw)
	reportHTTP.New(srv.l, domains.Report, srv.infra.Discord).RegisterRoutes(api, mw)
	classifierHTTP.New(srv.l, domains.Classifier, domains.Feature, srv.infra.Discord).RegisterRoutes(api, mw)

	srv.l.Infof(ctx, "Detection, report and classifier routes registered")
	return nil
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))
}
