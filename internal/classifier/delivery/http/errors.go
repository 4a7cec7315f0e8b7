package http

import (
	"errors"

	"citron-srv/internal/classifier"
	"citron-srv/internal/feature"
	pkgErrors "citron-srv/pkg/errors"
)

var (
	errInvalidRequest   = pkgErrors.NewHTTPError(400, "Hostnames are required")
	errTooManyHostnames = pkgErrors.NewHTTPError(400, "Too many hostnames")
	errModelNotFound    = pkgErrors.NewHTTPError(404, "Model not found")
	errEmptyHostname    = pkgErrors.NewHTTPError(400, "Hostname must not be empty")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, classifier.ErrModelNotFound):
		return errModelNotFound
	case errors.Is(err, feature.ErrEmptyHostname):
		return errEmptyHostname
	default:
		return err
	}
}
