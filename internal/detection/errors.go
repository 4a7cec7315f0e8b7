package detection

import "errors"

var (
	ErrWikiNotConfigured = errors.New("detection: wiki not configured")
	ErrInvalidDate       = errors.New("detection: invalid date")
	ErrEmptyHostname     = errors.New("detection: empty hostname")
	ErrDiffUnavailable   = errors.New("detection: diff unavailable")
)
