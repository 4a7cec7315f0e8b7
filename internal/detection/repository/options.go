package repository

import (
	"time"

	"citron-srv/internal/model"
)

// =====================================================
// ReportedHostname Options
// =====================================================

type CreateReportedHostnameOptions struct {
	ReportedHostname model.ReportedHostname
}

// ListReportedHostnamesOptions selects rows with From <= created_at < To.
type ListReportedHostnamesOptions struct {
	WikiID string
	From   time.Time
	To     time.Time
}

type GetReportedHostnamesOptions struct {
	WikiID string
	From   time.Time
	To     time.Time
	Limit  int64
	Offset int64
	Page   int
}

type ExistsReportedHostnameOptions struct {
	WikiID string
	From   time.Time
	To     time.Time
}

// =====================================================
// IgnoredHostname Options
// =====================================================

type CheckIgnoredHostnamesOptions struct {
	WikiID    string
	Hostnames []string
}

// CheckHostnameResult tells whether one input hostname is ignored.
type CheckHostnameResult struct {
	Hostname string `json:"hostname"`
	Existed  bool   `json:"existed"`
}

type ExistsIgnoredHostnameOptions struct {
	WikiID   string
	Hostname string
}

type CreateIgnoredHostnameOptions struct {
	WikiID   string
	Hostname string
}

type GetIgnoredHostnamesOptions struct {
	WikiID string
	Limit  int64
	Offset int64
	Page   int
}

// =====================================================
// Cache Options
// =====================================================

type GetUserGroupsOptions struct {
	ServerName string
	Username   string
}

type SaveUserGroupsOptions struct {
	ServerName string
	Username   string
	Groups     []string
	TTL        time.Duration
}
