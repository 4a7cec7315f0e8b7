package usecase

import (
	"context"
	"fmt"

	"citron-srv/internal/detection"
	"citron-srv/pkg/hostname"
)

// Extract compares the revisions of an edit, or reads the source of a new
// page, and returns the hostnames the revision added.
func (uc *implUseCase) Extract(ctx context.Context, ip detection.ExtractInput) ([]string, error) {
	client := uc.wikis.REST(ip.ServerName)

	if ip.OldRevisionID != nil {
		cmp, err := client.CompareRevisions(ctx, *ip.OldRevisionID, ip.NewRevisionID)
		if err != nil {
			uc.l.Errorf(ctx, "detection.usecase.Extract.CompareRevisions: %v", err)
			return nil, fmt.Errorf("%w: %v", detection.ErrDiffUnavailable, err)
		}
		return hostname.Extract(hostname.AddedComparisons(cmp.Segments())), nil
	}

	rev, err := client.GetRevision(ctx, ip.NewRevisionID)
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.Extract.GetRevision: %v", err)
		return nil, fmt.Errorf("%w: %v", detection.ErrDiffUnavailable, err)
	}
	return hostname.ExtractFromText(rev.Source), nil
}
