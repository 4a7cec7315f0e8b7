package repository

import (
	"context"

	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	ReportedHostnameRepository
	IgnoredHostnameRepository
}

// ReportedHostnameRepository - Operations for citron_spam__reported_hostname
type ReportedHostnameRepository interface {
	CreateReportedHostname(ctx context.Context, opt CreateReportedHostnameOptions) error
	ListReportedHostnames(ctx context.Context, opt ListReportedHostnamesOptions) ([]model.ReportedHostname, error)
	GetReportedHostnames(ctx context.Context, opt GetReportedHostnamesOptions) ([]model.ReportedHostname, paginator.Paginator, error)
	ExistsReportedHostname(ctx context.Context, opt ExistsReportedHostnameOptions) (bool, error)
}

// IgnoredHostnameRepository - Operations for citron_spam__ignored_hostname.
// Rows are never deleted.
type IgnoredHostnameRepository interface {
	CheckIgnoredHostnames(ctx context.Context, opt CheckIgnoredHostnamesOptions) ([]CheckHostnameResult, error)
	ExistsIgnoredHostname(ctx context.Context, opt ExistsIgnoredHostnameOptions) (bool, error)
	CreateIgnoredHostname(ctx context.Context, opt CreateIgnoredHostnameOptions) (model.IgnoredHostname, error)
	GetIgnoredHostnames(ctx context.Context, opt GetIgnoredHostnamesOptions) ([]model.IgnoredHostname, paginator.Paginator, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetUserGroups returns cached groups; ok is false on a miss.
	GetUserGroups(ctx context.Context, opt GetUserGroupsOptions) (groups []string, ok bool, err error)
	SaveUserGroups(ctx context.Context, opt SaveUserGroupsOptions) error
}
