package http

import (
	"errors"

	"citron-srv/internal/report"
	pkgErrors "citron-srv/pkg/errors"
)

var (
	errWikiNotConfigured = pkgErrors.NewHTTPError(404, "Wiki not configured")
	errInvalidDate       = pkgErrors.NewHTTPError(400, "Invalid date, expected YYYY-MM-DD")
	errReportNotFound    = pkgErrors.NewHTTPError(404, "Report not found")
	errReportMalformed   = pkgErrors.NewHTTPError(502, "Report page is not a valid report")
	errInvalidRequest    = pkgErrors.NewHTTPError(400, "Invalid request body")
	errArchiveDisabled   = pkgErrors.NewHTTPError(503, "Report archive is not configured")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrWikiNotConfigured):
		return errWikiNotConfigured
	case errors.Is(err, report.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportMalformed):
		return errReportMalformed
	case errors.Is(err, report.ErrArchiveDisabled):
		return errArchiveDisabled
	default:
		return err
	}
}
