package postgre

import (
	"citron-srv/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

// buildFeedbackArgs - Insert arguments in feedbackColumns order
func buildFeedbackArgs(f model.Feedback) []any {
	return []any{
		f.ID,
		f.CreatedAt.UTC(),
		f.CreatedBy,
		f.WikiID,
		f.ReportDate,
		f.Hostname,
		f.Status,
		f.Hash,
	}
}

func scanFeedback(s scanner) (model.Feedback, error) {
	var f model.Feedback
	err := s.Scan(&f.ID, &f.CreatedAt, &f.CreatedBy, &f.WikiID, &f.ReportDate, &f.Hostname, &f.Status, &f.Hash)
	f.CreatedAt = f.CreatedAt.UTC()
	return f, err
}
