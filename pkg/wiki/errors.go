package wiki

import "errors"

var (
	ErrNotFound         = errors.New("wiki: not found")
	ErrUnexpectedStatus = errors.New("wiki: unexpected status")
	ErrLoginFailed      = errors.New("wiki: login failed")
	ErrAPI              = errors.New("wiki: api error")
	ErrMissingToken     = errors.New("wiki: missing token")
)
