package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout     time.Duration
	Retries     int
	RetryWait   time.Duration
	RetryJitter time.Duration
	UserAgent   string
	// CookieJar keeps cookies between requests (session based APIs).
	CookieJar bool
}

// clientImpl implements IClient.
type clientImpl struct {
	client *retryablehttp.Client
	config ClientConfig
}
