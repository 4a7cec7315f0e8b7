package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"citron-srv/internal/detection/repository"
	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CheckIgnoredHostnames - One result per input hostname, in input order
func (r *implRepository) CheckIgnoredHostnames(ctx context.Context, opt repository.CheckIgnoredHostnamesOptions) ([]repository.CheckHostnameResult, error) {
	if len(opt.Hostnames) == 0 {
		return []repository.CheckHostnameResult{}, nil
	}

	rows, err := r.db.QueryContext(ctx, checkIgnoredHostnamesQuery, opt.WikiID, pq.Array(opt.Hostnames))
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.CheckIgnoredHostnames: %v", err)
		return nil, repository.ErrFailedToCheck
	}
	defer rows.Close()

	results := make([]repository.CheckHostnameResult, 0, len(opt.Hostnames))
	for rows.Next() {
		var res repository.CheckHostnameResult
		if err := rows.Scan(&res.Hostname, &res.Existed); err != nil {
			r.l.Errorf(ctx, "detection.repository.postgre.CheckIgnoredHostnames: scan: %v", err)
			return nil, repository.ErrFailedToCheck
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.CheckIgnoredHostnames: rows: %v", err)
		return nil, repository.ErrFailedToCheck
	}
	return results, nil
}

// ExistsIgnoredHostname - Whether one hostname is ignored on a wiki
func (r *implRepository) ExistsIgnoredHostname(ctx context.Context, opt repository.ExistsIgnoredHostnameOptions) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsIgnoredHostnameQuery, opt.WikiID, opt.Hostname).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.ExistsIgnoredHostname: %v", err)
		return false, repository.ErrFailedToCheck
	}
	return exists, nil
}

// CreateIgnoredHostname - Insert, or ErrAlreadyExists when the pair is present
func (r *implRepository) CreateIgnoredHostname(ctx context.Context, opt repository.CreateIgnoredHostnameOptions) (model.IgnoredHostname, error) {
	id, err := uuid.NewV7()
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.CreateIgnoredHostname: uuid: %v", err)
		return model.IgnoredHostname{}, repository.ErrFailedToInsert
	}

	row := r.db.QueryRowContext(ctx, insertIgnoredHostnameQuery, id, time.Now().UTC(), opt.WikiID, opt.Hostname)
	ih, err := scanIgnoredHostname(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.IgnoredHostname{}, repository.ErrAlreadyExists
	}
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.CreateIgnoredHostname: %v", err)
		return model.IgnoredHostname{}, repository.ErrFailedToInsert
	}
	return ih, nil
}

// GetIgnoredHostnames - Paginated ignore list, newest first
func (r *implRepository) GetIgnoredHostnames(ctx context.Context, opt repository.GetIgnoredHostnamesOptions) ([]model.IgnoredHostname, paginator.Paginator, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countIgnoredHostnamesQuery, opt.WikiID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.GetIgnoredHostnames: count: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToCount
	}

	rows, err := r.db.QueryContext(ctx, getIgnoredHostnamesQuery, opt.WikiID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.GetIgnoredHostnames: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}
	defer rows.Close()

	items := []model.IgnoredHostname{}
	for rows.Next() {
		ih, err := scanIgnoredHostname(rows)
		if err != nil {
			r.l.Errorf(ctx, "detection.repository.postgre.GetIgnoredHostnames: scan: %v", err)
			return nil, paginator.Paginator{}, repository.ErrFailedToList
		}
		items = append(items, ih)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "detection.repository.postgre.GetIgnoredHostnames: rows: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}

	return items, paginator.Paginator{
		Total:       total,
		Count:       int64(len(items)),
		PerPage:     opt.Limit,
		CurrentPage: opt.Page,
	}, nil
}

func scanIgnoredHostname(s scanner) (model.IgnoredHostname, error) {
	var ih model.IgnoredHostname
	err := s.Scan(&ih.ID, &ih.CreatedAt, &ih.WikiID, &ih.Hostname)
	ih.CreatedAt = ih.CreatedAt.UTC()
	return ih, err
}
