package report

import "errors"

var (
	ErrWikiNotConfigured = errors.New("report: wiki not configured")
	ErrInvalidDate       = errors.New("report: invalid date")
	ErrReportNotFound    = errors.New("report: report not found")
	ErrReportMalformed   = errors.New("report: report malformed")
	ErrArchiveDisabled   = errors.New("report: archive disabled")
)
