package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgHttp "citron-srv/pkg/http"

	"github.com/tidwall/gjson"
)

// ActionClient talks to the action API with a cookie session.
// Implementations are safe for concurrent use.
type ActionClient interface {
	Login(ctx context.Context, username, password string) error
	GetUserGroups(ctx context.Context, username string) ([]string, error)
	// Edit posts action=edit with params and a fresh CSRF token.
	Edit(ctx context.Context, params map[string]string) error
	Purge(ctx context.Context, titles string) error
}

type actionClient struct {
	http     pkgHttp.IClient
	endpoint string
}

// NewActionClient returns an ActionClient rooted at baseURL. client should
// keep cookies between requests.
func NewActionClient(baseURL string, client pkgHttp.IClient) ActionClient {
	return &actionClient{
		http:     client,
		endpoint: baseURL + actionPath + "?format=json&formatversion=2",
	}
}

func (c *actionClient) Login(ctx context.Context, username, password string) error {
	token, err := c.token(ctx, "login")
	if err != nil {
		return err
	}

	res, err := c.post(ctx, url.Values{
		"action":     {"login"},
		"lgname":     {username},
		"lgpassword": {password},
		"lgtoken":    {token},
	})
	if err != nil {
		return err
	}
	if result := res.Get("login.result").String(); result != "Success" {
		return fmt.Errorf("%w: %s %s", ErrLoginFailed, result, res.Get("login.reason").String())
	}
	return nil
}

func (c *actionClient) GetUserGroups(ctx context.Context, username string) ([]string, error) {
	res, err := c.get(ctx, url.Values{
		"action":  {"query"},
		"list":    {"users"},
		"usprop":  {"groups"},
		"ususers": {username},
	})
	if err != nil {
		return nil, err
	}

	groups := []string{}
	for _, g := range res.Get("query.users.0.groups").Array() {
		groups = append(groups, g.String())
	}
	return groups, nil
}

func (c *actionClient) Edit(ctx context.Context, params map[string]string) error {
	token, err := c.token(ctx, "csrf")
	if err != nil {
		return err
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("action", "edit")
	form.Set("token", token)

	res, err := c.post(ctx, form)
	if err != nil {
		return err
	}
	if result := res.Get("edit.result").String(); result != "Success" {
		return fmt.Errorf("%w: edit result %q", ErrAPI, result)
	}
	return nil
}

func (c *actionClient) Purge(ctx context.Context, titles string) error {
	_, err := c.post(ctx, url.Values{"action": {"purge"}, "titles": {titles}})
	return err
}

func (c *actionClient) token(ctx context.Context, kind string) (string, error) {
	q := url.Values{"action": {"query"}, "meta": {"tokens"}}
	if kind != "csrf" {
		q.Set("type", kind)
	}
	res, err := c.get(ctx, q)
	if err != nil {
		return "", err
	}
	token := res.Get("query.tokens." + kind + "token").String()
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingToken, kind)
	}
	return token, nil
}

func (c *actionClient) get(ctx context.Context, q url.Values) (gjson.Result, error) {
	body, status, err := c.http.Get(ctx, c.endpoint+"&"+q.Encode(), nil)
	if err != nil {
		return gjson.Result{}, err
	}
	return parseActionResponse(body, status)
}

func (c *actionClient) post(ctx context.Context, form url.Values) (gjson.Result, error) {
	body, status, err := c.http.PostForm(ctx, c.endpoint, form, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	return parseActionResponse(body, status)
}

func parseActionResponse(body []byte, status int) (gjson.Result, error) {
	if status != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: invalid json", ErrAPI)
	}
	res := gjson.ParseBytes(body)
	if code := res.Get("error.code"); code.Exists() {
		return res, fmt.Errorf("%w: %s: %s", ErrAPI, code.String(), res.Get("error.info").String())
	}
	return res, nil
}
