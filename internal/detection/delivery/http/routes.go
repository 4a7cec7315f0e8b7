package http

import (
	"citron-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	wikis := r.Group("/wikis/:wiki_id")
	wikis.Use(mw.InternalAuth())
	{
		wikis.GET("/detections", h.GetDetections)
		wikis.GET("/ignored-hostnames", h.GetIgnoredHostnames)
		wikis.POST("/ignored-hostnames", h.IgnoreHostname)
		wikis.POST("/hostnames/check", h.CheckHostnames)
	}
}
