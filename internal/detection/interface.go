package detection

import (
	"context"

	"citron-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process runs the detection pipeline for one admitted change.
	Process(ctx context.Context, ip ProcessInput) (ProcessOutput, error)
	// Extract resolves the hostnames a revision added, without filtering.
	Extract(ctx context.Context, ip ExtractInput) ([]string, error)

	GetDetections(ctx context.Context, ip GetDetectionsInput) (GetDetectionsOutput, error)
	ListDetections(ctx context.Context, ip ListDetectionsInput) ([]model.ReportedHostname, error)
	HasDetections(ctx context.Context, ip HasDetectionsInput) (bool, error)

	CheckHostnames(ctx context.Context, ip CheckHostnamesInput) ([]HostnameCheck, error)
	IsIgnored(ctx context.Context, ip IsIgnoredInput) (bool, error)
	IgnoreHostname(ctx context.Context, ip IgnoreHostnameInput) (IgnoreHostnameOutput, error)
	GetIgnoredHostnames(ctx context.Context, ip GetIgnoredHostnamesInput) (GetIgnoredHostnamesOutput, error)
}

// Publisher forwards persisted detections to downstream consumers.
type Publisher interface {
	PublishDetections(ctx context.Context, detections []model.ReportedHostname) error
}
