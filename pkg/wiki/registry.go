package wiki

import (
	"context"
	"fmt"
	"sync"

	pkgHttp "citron-srv/pkg/http"

	"golang.org/x/sync/singleflight"
)

// RegistryConfig configures the clients a Registry creates.
type RegistryConfig struct {
	HTTP pkgHttp.ClientConfig
	// Username and Password log every new action client in; empty Username
	// keeps the session anonymous.
	Username string
	Password string
	// BaseURL maps a server name to scheme and host. Defaults to https.
	BaseURL func(serverName string) string
}

// Registry lazily creates one REST and one action client per server name.
// Concurrent first requests for the same server share one creation.
type Registry struct {
	cfg    RegistryConfig
	mu     sync.RWMutex
	rest   map[string]RESTClient
	action map[string]ActionClient
	group  singleflight.Group
}

// NewRegistry creates an empty Registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.BaseURL == nil {
		cfg.BaseURL = func(serverName string) string { return "https://" + serverName }
	}
	return &Registry{
		cfg:    cfg,
		rest:   make(map[string]RESTClient),
		action: make(map[string]ActionClient),
	}
}

// REST returns the REST client for serverName.
func (r *Registry) REST(serverName string) RESTClient {
	r.mu.RLock()
	c, ok := r.rest[serverName]
	r.mu.RUnlock()
	if ok {
		return c
	}

	v, _, _ := r.group.Do("rest:"+serverName, func() (any, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if c, ok := r.rest[serverName]; ok {
			return c, nil
		}
		c := NewRESTClient(r.cfg.BaseURL(serverName), pkgHttp.NewClient(r.cfg.HTTP))
		r.rest[serverName] = c
		return c, nil
	})
	return v.(RESTClient)
}

// Action returns the logged-in action client for serverName. A failed login
// is not cached.
func (r *Registry) Action(ctx context.Context, serverName string) (ActionClient, error) {
	r.mu.RLock()
	c, ok := r.action[serverName]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	v, err, _ := r.group.Do("action:"+serverName, func() (any, error) {
		r.mu.RLock()
		c, ok := r.action[serverName]
		r.mu.RUnlock()
		if ok {
			return c, nil
		}

		httpCfg := r.cfg.HTTP
		httpCfg.CookieJar = true
		c = NewActionClient(r.cfg.BaseURL(serverName), pkgHttp.NewClient(httpCfg))
		if r.cfg.Username != "" {
			if err := c.Login(ctx, r.cfg.Username, r.cfg.Password); err != nil {
				return nil, fmt.Errorf("login to %s: %w", serverName, err)
			}
		}

		r.mu.Lock()
		r.action[serverName] = c
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(ActionClient), nil
}

// Clients resolves wiki clients by server name. *Registry implements it.
type Clients interface {
	REST(serverName string) RESTClient
	Action(ctx context.Context, serverName string) (ActionClient, error)
}

var _ Clients = (*Registry)(nil)
