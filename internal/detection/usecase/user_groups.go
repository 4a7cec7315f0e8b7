package usecase

import (
	"context"
	"net/netip"
	"slices"

	"citron-srv/internal/detection/repository"
	"citron-srv/internal/model"
)

// isIgnoredUser reports whether username belongs to one of the wiki's
// ignored groups. IP editors are never ignored, and a failed lookup counts
// as not ignored.
func (uc *implUseCase) isIgnoredUser(ctx context.Context, w model.Wiki, serverName, username string) bool {
	if len(w.IgnoredUserGroups) == 0 || isIP(username) {
		return false
	}

	groups, err := uc.userGroups(ctx, serverName, username)
	if err != nil {
		uc.l.Warnf(ctx, "detection.usecase.isIgnoredUser: unable to retrieve user groups for %s on %s: %v", username, w.ID, err)
		return false
	}
	for _, g := range w.IgnoredUserGroups {
		if slices.Contains(groups, g) {
			return true
		}
	}
	return false
}

func (uc *implUseCase) userGroups(ctx context.Context, serverName, username string) ([]string, error) {
	if uc.cache != nil {
		groups, ok, err := uc.cache.GetUserGroups(ctx, repository.GetUserGroupsOptions{ServerName: serverName, Username: username})
		if err == nil && ok {
			return groups, nil
		}
	}

	client, err := uc.wikis.Action(ctx, serverName)
	if err != nil {
		return nil, err
	}
	groups, err := client.GetUserGroups(ctx, username)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SaveUserGroups(ctx, repository.SaveUserGroupsOptions{
			ServerName: serverName,
			Username:   username,
			Groups:     groups,
			TTL:        uc.cfg.UserGroupsTTL,
		}); err != nil {
			uc.l.Warnf(ctx, "detection.usecase.userGroups.SaveUserGroups: %v", err)
		}
	}
	return groups, nil
}

func isIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}
