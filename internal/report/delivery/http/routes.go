package http

import (
	"citron-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.Use(mw.InternalAuth())
	{
		reports.POST("/reconcile", h.Reconcile)
		reports.POST("/announce", h.Announce)
		reports.POST("/feedback/sync", h.SyncFeedback)
	}

	wikis := r.Group("/wikis/:wiki_id")
	wikis.Use(mw.InternalAuth())
	{
		wikis.GET("/report", h.GetReport)
		wikis.GET("/report/archives", h.ListArchives)
		wikis.GET("/report/archives/:version", h.GetArchive)
	}
}
