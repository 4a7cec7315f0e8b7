package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"citron-srv/internal/detection/repository"
	pkgRedis "citron-srv/pkg/redis"
)

const (
	Prefix     = "citron:usergroups:"
	DefaultTTL = time.Hour
)

func userGroupsKey(serverName, username string) string {
	return fmt.Sprintf("%s%s:%s", Prefix, serverName, username)
}

func (r *implRepository) GetUserGroups(ctx context.Context, opt repository.GetUserGroupsOptions) ([]string, bool, error) {
	data, err := r.redis.GetClient().Get(ctx, userGroupsKey(opt.ServerName, opt.Username)).Bytes()
	if pkgRedis.IsNil(err) {
		return nil, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.redis.GetUserGroups: %v", err)
		return nil, false, err
	}

	var groups []string
	if err := json.Unmarshal(data, &groups); err != nil {
		r.l.Errorf(ctx, "detection.repository.redis.GetUserGroups: unmarshal error: %v", err)
		return nil, false, err
	}
	return groups, true, nil
}

func (r *implRepository) SaveUserGroups(ctx context.Context, opt repository.SaveUserGroupsOptions) error {
	groups := opt.Groups
	if groups == nil {
		groups = []string{}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.redis.SaveUserGroups: marshal error: %v", err)
		return err
	}

	ttl := opt.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	if err := r.redis.GetClient().Set(ctx, userGroupsKey(opt.ServerName, opt.Username), data, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "detection.repository.redis.SaveUserGroups: %v", err)
		return err
	}
	return nil
}
