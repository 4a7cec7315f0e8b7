package repository

import "errors"

var (
	ErrFeedbackCreateFailed = errors.New("repository: failed to create feedback")
	ErrFeedbackListFailed   = errors.New("repository: failed to list feedback")
)
