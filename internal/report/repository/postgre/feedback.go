package postgre

import (
	"context"

	"citron-srv/internal/model"
	"citron-srv/internal/report/repository"
)

// CreateFeedback - Insert one reviewer verdict
func (r *implRepository) CreateFeedback(ctx context.Context, opts repository.CreateFeedbackOptions) error {
	if _, err := r.db.ExecContext(ctx, insertFeedbackQuery, buildFeedbackArgs(opts.Feedback)...); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateFeedback: Failed to insert feedback: %v", err)
		return repository.ErrFeedbackCreateFailed
	}
	return nil
}

// ListFeedbacks - Feedback of a wiki, optionally of one report date
func (r *implRepository) ListFeedbacks(ctx context.Context, opts repository.ListFeedbacksOptions) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, listFeedbacksQuery, opts.WikiID, opts.ReportDate)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListFeedbacks: Failed to query feedback: %v", err)
		return nil, repository.ErrFeedbackListFailed
	}
	defer rows.Close()

	feedbacks := []model.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListFeedbacks: Failed to scan feedback: %v", err)
			return nil, repository.ErrFeedbackListFailed
		}
		feedbacks = append(feedbacks, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListFeedbacks: rows: %v", err)
		return nil, repository.ErrFeedbackListFailed
	}
	return feedbacks, nil
}
