package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"citron-srv/internal/model"
	"citron-srv/internal/report"
	"citron-srv/pkg/minio"
	"citron-srv/pkg/wiki"
)

const (
	markerFormat          = "{{#invoke:Citron/Spam|report|date=%s}}"
	updateSummaryFormat   = "Update Citron/Spam report at %s"
	announceSummaryFormat = "Announce Citron/Spam report %s"
	syncSummary           = "Sync feedback of Citron/Spam report"
)

func (uc *implUseCase) pageTitle(date string) string {
	return fmt.Sprintf("%s/%s.json", uc.cfg.PagePrefix, date)
}

// fetchReport reads and decodes a report page.
func fetchReport(ctx context.Context, rest wiki.RESTClient, title string) (model.Report, error) {
	page, err := rest.GetPage(ctx, title)
	if errors.Is(err, wiki.ErrNotFound) {
		return model.Report{}, report.ErrReportNotFound
	}
	if err != nil {
		return model.Report{}, err
	}

	var r model.Report
	if err := json.Unmarshal([]byte(page.Source), &r); err != nil {
		return model.Report{}, fmt.Errorf("%w: %v", report.ErrReportMalformed, err)
	}
	if r.Feedbacks == nil {
		r.Feedbacks = []model.ReportFeedback{}
	}
	return r, nil
}

func encodeReport(r model.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// saveReport overwrites the report page and archives the written body.
// Concurrent edits of the page are not detected; the last write wins.
func (uc *implUseCase) saveReport(ctx context.Context, w model.Wiki, date string, r model.Report, summary string) error {
	body, err := encodeReport(r)
	if err != nil {
		return err
	}

	action, err := uc.wikis.Action(ctx, w.ServerName)
	if err != nil {
		return err
	}
	if err := action.Edit(ctx, map[string]string{
		"title":        uc.pageTitle(date),
		"text":         string(body),
		"summary":      summary,
		"bot":          "true",
		"contentmodel": "json",
	}); err != nil {
		return err
	}

	uc.archive(ctx, w.ID, date, r.UpdatedAt, body)
	return nil
}

// archive stores a copy of a written report. Failures are only logged.
func (uc *implUseCase) archive(ctx context.Context, wikiID, date, updatedAt string, body []byte) {
	if uc.minio == nil || uc.cfg.ArchiveBucket == "" {
		return
	}

	objectName := archiveKey(wikiID, date, updatedAt)
	if _, err := uc.minio.PutObject(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.ArchiveBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "application/json",
	}); err != nil {
		uc.l.Warnf(ctx, "report.usecase.archive: Failed to archive %s: %v", objectName, err)
	}
}
