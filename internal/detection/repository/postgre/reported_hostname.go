package postgre

import (
	"context"
	"database/sql"

	"citron-srv/internal/detection/repository"
	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"
)

// CreateReportedHostname - Insert one detection. Duplicates are allowed.
func (r *implRepository) CreateReportedHostname(ctx context.Context, opt repository.CreateReportedHostnameOptions) error {
	if _, err := r.db.ExecContext(ctx, insertReportedHostnameQuery, buildReportedHostnameArgs(opt.ReportedHostname)...); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.CreateReportedHostname: %v", err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// ListReportedHostnames - All detections of a wiki in a time range, oldest first
func (r *implRepository) ListReportedHostnames(ctx context.Context, opt repository.ListReportedHostnamesOptions) ([]model.ReportedHostname, error) {
	rows, err := r.db.QueryContext(ctx, listReportedHostnamesQuery, opt.WikiID, opt.From.UTC(), opt.To.UTC())
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.ListReportedHostnames: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	return r.collectReportedHostnames(ctx, rows, "ListReportedHostnames")
}

// GetReportedHostnames - Paginated detections, newest first
func (r *implRepository) GetReportedHostnames(ctx context.Context, opt repository.GetReportedHostnamesOptions) ([]model.ReportedHostname, paginator.Paginator, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countReportedHostnamesQuery, opt.WikiID, opt.From.UTC(), opt.To.UTC()).Scan(&total); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.GetReportedHostnames: count: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToCount
	}

	rows, err := r.db.QueryContext(ctx, getReportedHostnamesQuery, opt.WikiID, opt.From.UTC(), opt.To.UTC(), opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.GetReportedHostnames: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}
	defer rows.Close()

	items, err := r.collectReportedHostnames(ctx, rows, "GetReportedHostnames")
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	return items, paginator.Paginator{
		Total:       total,
		Count:       int64(len(items)),
		PerPage:     opt.Limit,
		CurrentPage: opt.Page,
	}, nil
}

// ExistsReportedHostname - Whether any detection exists in a time range
func (r *implRepository) ExistsReportedHostname(ctx context.Context, opt repository.ExistsReportedHostnameOptions) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsReportedHostnameQuery, opt.WikiID, opt.From.UTC(), opt.To.UTC()).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.ExistsReportedHostname: %v", err)
		return false, repository.ErrFailedToCheck
	}
	return exists, nil
}

func (r *implRepository) collectReportedHostnames(ctx context.Context, rows *sql.Rows, op string) ([]model.ReportedHostname, error) {
	items := []model.ReportedHostname{}
	for rows.Next() {
		rh, err := scanReportedHostname(rows)
		if err != nil {
			r.l.Errorf(ctx, "detection.repository.postgre.%s: scan: %v", op, err)
			return nil, repository.ErrFailedToList
		}
		items = append(items, rh)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.%s: rows: %v", op, err)
		return nil, repository.ErrFailedToList
	}
	return items, nil
}
