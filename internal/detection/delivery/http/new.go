package http

import (
	"citron-srv/internal/detection"
	"citron-srv/internal/middleware"
	"citron-srv/pkg/discord"
	"citron-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      detection.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc detection.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
