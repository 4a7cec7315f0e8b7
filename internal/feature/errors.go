package feature

import "errors"

var (
	ErrEmptyHostname = errors.New("feature: empty hostname")
)
