package forest

import "errors"

var (
	ErrEmptyModel      = errors.New("forest: model has no trees")
	ErrInvalidNode     = errors.New("forest: invalid node")
	ErrFeatureMismatch = errors.New("forest: row width does not match model")
)
