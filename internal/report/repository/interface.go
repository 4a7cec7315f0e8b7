package repository

import (
	"context"

	"citron-srv/internal/model"
)

//go:generate mockery --name FeedbackRepository
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, opts CreateFeedbackOptions) error
	ListFeedbacks(ctx context.Context, opts ListFeedbacksOptions) ([]model.Feedback, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	FeedbackRepository
}
