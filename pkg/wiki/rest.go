package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	pkgHttp "citron-srv/pkg/http"
)

// RESTClient reads revisions and pages through the wiki REST API.
// Implementations are safe for concurrent use.
type RESTClient interface {
	CompareRevisions(ctx context.Context, from, to int64) (*Comparison, error)
	GetRevision(ctx context.Context, id int64) (*Revision, error)
	GetPage(ctx context.Context, title string) (*Page, error)
}

type restClient struct {
	http    pkgHttp.IClient
	baseURL string
}

// NewRESTClient returns a RESTClient rooted at baseURL (scheme and host).
func NewRESTClient(baseURL string, client pkgHttp.IClient) RESTClient {
	return &restClient{http: client, baseURL: baseURL + restPath}
}

func (c *restClient) CompareRevisions(ctx context.Context, from, to int64) (*Comparison, error) {
	var out Comparison
	if err := c.get(ctx, fmt.Sprintf("/revision/%d/compare/%d", from, to), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) GetRevision(ctx context.Context, id int64) (*Revision, error) {
	var out Revision
	if err := c.get(ctx, fmt.Sprintf("/revision/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) GetPage(ctx context.Context, title string) (*Page, error) {
	var out Page
	if err := c.get(ctx, "/page/"+url.PathEscape(title), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) get(ctx context.Context, path string, out any) error {
	body, status, err := c.http.Get(ctx, c.baseURL+path, map[string]string{"Accept": "application/json"})
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case status != http.StatusOK:
		return fmt.Errorf("%w: %d for %s", ErrUnexpectedStatus, status, path)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("wiki: decode %s: %w", path, err)
	}
	return nil
}
