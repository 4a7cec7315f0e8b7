package classifier

import "errors"

var (
	ErrInferenceFailed = errors.New("classifier: inference failed")
	ErrModelNotFound   = errors.New("classifier: model not found")
	ErrNoModels        = errors.New("classifier: no models configured")
	ErrDuplicateModel  = errors.New("classifier: duplicate model id")
)
