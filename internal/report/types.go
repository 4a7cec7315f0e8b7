package report

import "time"

const (
	StatusUpdated   = "updated"
	StatusAnnounced = "announced"
	StatusSynced    = "synced"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// JobInput selects the wikis and the UTC day a job works on. An empty WikiID
// selects every configured wiki; an empty Date selects the job's default day.
type JobInput struct {
	WikiID string
	Date   string
}

type JobOutput struct {
	Date    string       `json:"date"`
	Results []WikiResult `json:"results"`
}

// WikiResult is the outcome of a job on one wiki.
type WikiResult struct {
	WikiID string `json:"wiki_id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type GetReportInput struct {
	WikiID string
	Date   string
}

type ListArchivesInput struct {
	WikiID string
	Date   string
}

// ArchivedVersion is one stored copy of a report page, named by the
// report's updatedAt.
type ArchivedVersion struct {
	Version      string    `json:"version"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type GetArchiveInput struct {
	WikiID  string
	Date    string
	Version string
}
