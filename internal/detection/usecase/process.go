package usecase

import (
	"context"
	"fmt"

	"citron-srv/internal/classifier"
	"citron-srv/internal/detection"
	"citron-srv/internal/detection/repository"
	"citron-srv/internal/feature"
	"citron-srv/internal/model"
	"citron-srv/pkg/util"

	"github.com/google/uuid"
)

func (uc *implUseCase) Process(ctx context.Context, ip detection.ProcessInput) (detection.ProcessOutput, error) {
	c := ip.Change
	w, ok := uc.cfg.Wikis[c.Wiki]
	if !ok {
		return detection.ProcessOutput{}, detection.ErrWikiNotConfigured
	}
	serverName := w.ServerName
	if serverName == "" {
		serverName = c.ServerName
	}

	if uc.isIgnoredUser(ctx, w, serverName, c.User) {
		uc.l.Debugf(ctx, "detection.usecase.Process: user %s on %s is in an ignored group", c.User, c.Wiki)
		return detection.ProcessOutput{SkippedUser: true}, nil
	}

	extracted, err := uc.Extract(ctx, detection.ExtractInput{
		ServerName:    serverName,
		OldRevisionID: c.Revision.Old,
		NewRevisionID: c.Revision.New,
	})
	if err != nil {
		return detection.ProcessOutput{}, err
	}
	out := detection.ProcessOutput{Extracted: extracted}
	if len(extracted) == 0 {
		return out, nil
	}

	candidates, err := uc.candidates(ctx, c.Wiki, extracted)
	if err != nil {
		return out, err
	}
	out.Candidates = candidates
	if len(candidates) == 0 {
		return out, nil
	}

	features, err := uc.featureUC.CollectMany(ctx, feature.CollectManyInput{Hostnames: candidates})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.Process.CollectMany: %v", err)
		return out, err
	}

	classified, err := uc.classifyUC.Classify(ctx, classifier.ClassifyInput{Features: features, ModelID: w.ModelID})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.Process.Classify: %v", err)
		return out, err
	}

	detections, err := uc.buildDetections(c, classified)
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.Process.buildDetections: %v", err)
		return out, err
	}

	for _, d := range detections {
		if err := uc.repo.CreateReportedHostname(ctx, repository.CreateReportedHostnameOptions{ReportedHostname: d}); err != nil {
			uc.l.Errorf(ctx, "detection.usecase.Process.CreateReportedHostname: %v", err)
			return out, err
		}
		out.Detections = append(out.Detections, d)
	}

	if uc.metrics != nil {
		uc.metrics.Detections.WithLabelValues(c.Wiki).Add(float64(len(detections)))
	}

	if uc.publisher != nil && len(detections) > 0 {
		if err := uc.publisher.PublishDetections(ctx, detections); err != nil {
			uc.l.Warnf(ctx, "detection.usecase.Process.PublishDetections: %v", err)
		}
	}

	uc.l.Infof(ctx, "detection.usecase.Process: wiki=%s revision=%d extracted=%v reported=%s",
		c.Wiki, c.Revision.New, extracted, summarize(detections))
	return out, nil
}

// candidates drops compound-suffix hostnames and those already ignored on
// the wiki, keeping extraction order.
func (uc *implUseCase) candidates(ctx context.Context, wikiID string, extracted []string) ([]string, error) {
	filtered := make([]string, 0, len(extracted))
	for _, h := range extracted {
		if !uc.suffixes.Contains(h) {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return nil, nil
	}

	checks, err := uc.repo.CheckIgnoredHostnames(ctx, repository.CheckIgnoredHostnamesOptions{
		WikiID:    wikiID,
		Hostnames: filtered,
	})
	if err != nil {
		uc.l.Errorf(ctx, "detection.usecase.candidates.CheckIgnoredHostnames: %v", err)
		return nil, err
	}

	fresh := make([]string, 0, len(checks))
	for _, r := range checks {
		if !r.Existed {
			fresh = append(fresh, r.Hostname)
		}
	}
	return fresh, nil
}

func (uc *implUseCase) buildDetections(c model.Change, classified classifier.ClassifyOutput) ([]model.ReportedHostname, error) {
	now := uc.now().UTC()
	detections := make([]model.ReportedHostname, 0, len(classified.Results))
	for _, r := range classified.Results {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		detections = append(detections, model.ReportedHostname{
			ID:                id,
			CreatedAt:         now,
			WikiID:            c.Wiki,
			User:              c.User,
			Page:              c.Title,
			RevisionID:        c.Revision.New,
			RevisionTimestamp: c.Timestamp,
			Hostname:          r.Hostname,
			Score:             util.RoundHalfUp6(float64(r.Probability)),
			ModelNumber:       classified.Model.Number,
		})
	}
	return detections, nil
}

func summarize(detections []model.ReportedHostname) string {
	parts := make([]string, 0, len(detections))
	for _, d := range detections {
		parts = append(parts, fmt.Sprintf("%s (%v)", d.Hostname, d.Score))
	}
	return fmt.Sprintf("(%d) %v", len(parts), parts)
}
