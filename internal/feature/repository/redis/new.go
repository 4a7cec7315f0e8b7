package redis

import (
	"citron-srv/internal/feature/repository"
	"citron-srv/pkg/log"
	pkgRedis "citron-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
