package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/minio"
	"citron-srv/pkg/util"
)

const archiveExt = ".json"

func archivePrefix(wikiID, date string) string {
	return wikiID + "/" + date + "/"
}

func archiveKey(wikiID, date, version string) string {
	return archivePrefix(wikiID, date) + version + archiveExt
}

// archiveDay validates the wiki and day shared by the archive reads.
func (uc *implUseCase) archiveDay(wikiID, date string) (string, error) {
	if uc.minio == nil || uc.cfg.ArchiveBucket == "" {
		return "", report.ErrArchiveDisabled
	}
	if _, ok := uc.cfg.Wikis[wikiID]; !ok {
		return "", report.ErrWikiNotConfigured
	}
	day, err := resolveDay(date, uc.now().UTC())
	if err != nil {
		return "", err
	}
	return util.FormatDate(day), nil
}

func (uc *implUseCase) ListArchives(ctx context.Context, ip report.ListArchivesInput) ([]report.ArchivedVersion, error) {
	date, err := uc.archiveDay(ip.WikiID, ip.Date)
	if err != nil {
		return nil, err
	}

	objects, err := uc.minio.ListObjects(ctx, uc.cfg.ArchiveBucket, archivePrefix(ip.WikiID, date))
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListArchives.ListObjects: %v", err)
		return nil, err
	}

	versions := make([]report.ArchivedVersion, 0, len(objects))
	for _, o := range objects {
		name := path.Base(o.ObjectName)
		if !strings.HasSuffix(name, archiveExt) {
			continue
		}
		versions = append(versions, report.ArchivedVersion{
			Version:      strings.TrimSuffix(name, archiveExt),
			Size:         o.Size,
			LastModified: o.LastModified,
		})
	}
	// updatedAt versions sort chronologically as strings.
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version < versions[j].Version })
	return versions, nil
}

func (uc *implUseCase) GetArchive(ctx context.Context, ip report.GetArchiveInput) (model.Report, error) {
	date, err := uc.archiveDay(ip.WikiID, ip.Date)
	if err != nil {
		return model.Report{}, err
	}
	if ip.Version == "" || strings.Contains(ip.Version, "/") {
		return model.Report{}, report.ErrReportNotFound
	}

	body, err := uc.minio.GetObject(ctx, uc.cfg.ArchiveBucket, archiveKey(ip.WikiID, date, ip.Version))
	if errors.Is(err, minio.ErrObjectNotFound) {
		return model.Report{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetArchive.GetObject: %v", err)
		return model.Report{}, err
	}

	var r model.Report
	if err := json.Unmarshal(body, &r); err != nil {
		return model.Report{}, fmt.Errorf("%w: %v", report.ErrReportMalformed, err)
	}
	if r.Feedbacks == nil {
		r.Feedbacks = []model.ReportFeedback{}
	}
	return r, nil
}
