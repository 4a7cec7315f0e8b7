package redis

import (
	"citron-srv/internal/detection/repository"
	"citron-srv/pkg/log"
	pkgRedis "citron-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
