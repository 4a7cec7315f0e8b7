// Package openpagerank reads domain ranks from the Open PageRank API.
package openpagerank

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	pkgHttp "citron-srv/pkg/http"

	"github.com/tidwall/gjson"
)

const DefaultBaseURL = "https://openpagerank.com/api/v1.0"

var (
	ErrAPIKeyRequired   = errors.New("openpagerank: api key required")
	ErrUnexpectedStatus = errors.New("openpagerank: unexpected status")
	ErrNoResult         = errors.New("openpagerank: no result")
)

// Client fetches page ranks.
// Implementations are safe for concurrent use.
type Client interface {
	// GetPageRank returns the decimal page rank of domain.
	GetPageRank(ctx context.Context, domain string) (float64, error)
}

type client struct {
	http    pkgHttp.IClient
	apiKey  string
	baseURL string
}

// New returns a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient pkgHttp.IClient, apiKey, baseURL string) (Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{http: httpClient, apiKey: apiKey, baseURL: baseURL}, nil
}

func (c *client) GetPageRank(ctx context.Context, domain string) (float64, error) {
	q := url.Values{"domains[]": {domain}}
	body, status, err := c.http.Get(ctx, c.baseURL+"/getPageRank?"+q.Encode(), map[string]string{"API-OPR": c.apiKey})
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	rank := gjson.GetBytes(body, "response.0.page_rank_decimal")
	if !rank.Exists() {
		return 0, fmt.Errorf("%w: %s", ErrNoResult, domain)
	}
	return rank.Float(), nil
}
