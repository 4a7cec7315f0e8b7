package detection

import (
	"time"

	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"
)

type ProcessInput struct {
	Change model.Change
}

type ProcessOutput struct {
	// SkippedUser is set when the editor belongs to an ignored user group.
	SkippedUser bool
	Extracted   []string
	Candidates  []string
	Detections  []model.ReportedHostname
}

// ExtractInput identifies a revision. OldRevisionID is nil for page creations.
type ExtractInput struct {
	ServerName    string
	OldRevisionID *int64
	NewRevisionID int64
}

type GetDetectionsInput struct {
	WikiID   string
	Date     string
	PagQuery paginator.PaginateQuery
}

type GetDetectionsOutput struct {
	Detections []model.ReportedHostname
	Pagination paginator.Paginator
}

type ListDetectionsInput struct {
	WikiID string
	From   time.Time
	To     time.Time
}

type HasDetectionsInput struct {
	WikiID string
	From   time.Time
	To     time.Time
}

type CheckHostnamesInput struct {
	WikiID    string
	Hostnames []string
}

type HostnameCheck struct {
	Hostname string `json:"hostname"`
	Existed  bool   `json:"existed"`
}

type IsIgnoredInput struct {
	WikiID   string
	Hostname string
}

type IgnoreHostnameInput struct {
	WikiID   string
	Hostname string
}

type IgnoreHostnameOutput struct {
	Hostname model.IgnoredHostname
	// Created is false when the hostname was already ignored.
	Created bool
}

type GetIgnoredHostnamesInput struct {
	WikiID   string
	PagQuery paginator.PaginateQuery
}

type GetIgnoredHostnamesOutput struct {
	Hostnames  []model.IgnoredHostname
	Pagination paginator.Paginator
}
