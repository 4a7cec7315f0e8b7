package http

import (
	"errors"

	"citron-srv/internal/detection"
	pkgErrors "citron-srv/pkg/errors"
)

var (
	errWikiNotConfigured = pkgErrors.NewHTTPError(404, "Wiki not configured")
	errInvalidDate       = pkgErrors.NewHTTPError(400, "Invalid date, expected YYYY-MM-DD")
	errEmptyHostname     = pkgErrors.NewHTTPError(400, "Hostname is required")
	errTooManyHostnames  = pkgErrors.NewHTTPError(400, "Too many hostnames")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, detection.ErrWikiNotConfigured):
		return errWikiNotConfigured
	case errors.Is(err, detection.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, detection.ErrEmptyHostname):
		return errEmptyHostname
	default:
		return err
	}
}
