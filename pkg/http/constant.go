package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 5
	// DefaultRetryWait is the base wait between retries.
	DefaultRetryWait = 800 * time.Millisecond
	// DefaultRetryJitter is the maximum deviation applied to DefaultRetryWait.
	DefaultRetryJitter = 200 * time.Millisecond
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:     DefaultTimeout,
		Retries:     DefaultRetries,
		RetryWait:   DefaultRetryWait,
		RetryJitter: DefaultRetryJitter,
	}
}
