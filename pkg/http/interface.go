package http

import (
	"context"
	"net/url"
)

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, rawURL string, body interface{}, headers map[string]string) ([]byte, int, error)
	PostForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	return &clientImpl{
		client: newRetryableClient(cfg),
		config: cfg,
	}
}
