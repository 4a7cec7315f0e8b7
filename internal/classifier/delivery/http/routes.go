package http

import (
	"citron-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/classify", mw.InternalAuth(), h.Classify)
}
