package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("repository: failed to insert")
	ErrFailedToList   = errors.New("repository: failed to list")
	ErrFailedToCount  = errors.New("repository: failed to count")
	ErrFailedToCheck  = errors.New("repository: failed to check")
	ErrAlreadyExists  = errors.New("repository: already exists")
)
