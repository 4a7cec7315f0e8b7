package repository

import "citron-srv/internal/model"

type CreateFeedbackOptions struct {
	Feedback model.Feedback
}

// ListFeedbacksOptions selects the feedback of one report. An empty
// ReportDate lists every report of the wiki.
type ListFeedbacksOptions struct {
	WikiID     string
	ReportDate string
}
