package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"citron-srv/internal/feature/repository"
	pkgRedis "citron-srv/pkg/redis"
)

const (
	Prefix     = "citron:pagerank:"
	DefaultTTL = 7 * 24 * time.Hour
)

func (r *implRepository) GetPageRank(ctx context.Context, opt repository.GetPageRankOptions) (float64, bool, error) {
	key := fmt.Sprintf("%s%s", Prefix, opt.Hostname)
	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if pkgRedis.IsNil(err) {
		return 0, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "feature.repository.redis.GetPageRank: %v", err)
		return 0, false, err
	}

	rank, err := strconv.ParseFloat(data, 64)
	if err != nil {
		r.l.Errorf(ctx, "feature.repository.redis.GetPageRank: parse error: %v", err)
		return 0, false, err
	}
	return rank, true, nil
}

func (r *implRepository) SavePageRank(ctx context.Context, opt repository.SavePageRankOptions) error {
	key := fmt.Sprintf("%s%s", Prefix, opt.Hostname)

	ttl := opt.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	value := strconv.FormatFloat(opt.Rank, 'g', -1, 64)
	if err := r.redis.GetClient().Set(ctx, key, value, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "feature.repository.redis.SavePageRank: %v", err)
		return err
	}
	return nil
}
