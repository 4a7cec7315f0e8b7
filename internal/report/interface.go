package report

import (
	"context"

	"citron-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reconcile rewrites the day's report page of each wiki from the
	// detections stored so far.
	Reconcile(ctx context.Context, ip JobInput) (JobOutput, error)
	// Announce adds one section per day to each wiki's announcement page.
	Announce(ctx context.Context, ip JobInput) (JobOutput, error)
	// SyncFeedback stores the reviewer feedback of a finished report and
	// grows the ignore list.
	SyncFeedback(ctx context.Context, ip JobInput) (JobOutput, error)
	GetReport(ctx context.Context, ip GetReportInput) (model.Report, error)
	// ListArchives lists the archived versions of a day's report, oldest
	// first.
	ListArchives(ctx context.Context, ip ListArchivesInput) ([]ArchivedVersion, error)
	GetArchive(ctx context.Context, ip GetArchiveInput) (model.Report, error)
}
