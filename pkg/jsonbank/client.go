package jsonbank

import (
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Client is a JsonBank API client. It is safe for concurrent use.
type Client struct {
	keys   Keys
	http   Doer
	fs     afero.Fs
	logger hclog.Logger

	mu        sync.RWMutex
	host      string
	endpoints Endpoints
	identity  *AuthenticatedIdentity
}

// New creates a client from cfg. Unset fields take their defaults; a nil cfg is
// the same as DefaultConfig().
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.applyDefaults()

	return &Client{
		keys:      c.Keys,
		http:      c.HTTPClient,
		fs:        c.FS,
		logger:    c.Logger.Named("jsonbank"),
		host:      c.Host,
		endpoints: MakeEndpoints(c.Host),
	}
}

// NewWithoutConfig creates an unauthenticated client for DefaultHost.
func NewWithoutConfig() *Client {
	return New(nil)
}

// Host returns the configured host.
func (c *Client) Host() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.host
}

// SetHost changes the host and recomputes the endpoints.
func (c *Client) SetHost(host string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.host = host
	c.endpoints = MakeEndpoints(host)
}

// Endpoints returns the endpoints for the current host.
func (c *Client) Endpoints() Endpoints {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoints
}

// HasKey reports whether the client was configured with the key.
func (c *Client) HasKey(kind KeyKind) bool {
	return c.keys.Has(kind)
}

func (c *Client) publicURL(segments ...string) string {
	return join(c.Endpoints().Public, segments...)
}

func (c *Client) v1URL(segments ...string) string {
	return join(c.Endpoints().V1, segments...)
}
