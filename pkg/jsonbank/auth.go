package jsonbank

import (
	"context"
	"net/http"
)

// Authenticate verifies the public key and caches the returned identity.
func (c *Client) Authenticate(ctx context.Context) (AuthenticatedIdentity, error) {
	resp, err := c.dispatch(ctx, request{
		method:        http.MethodPost,
		url:           c.v1URL("authenticate"),
		requirePublic: true,
	})
	if err != nil {
		return AuthenticatedIdentity{}, err
	}

	identity, err := decode[AuthenticatedIdentity](resp)
	if err != nil {
		return AuthenticatedIdentity{}, err
	}

	cached := identity.clone()
	c.mu.Lock()
	c.identity = &cached
	c.mu.Unlock()

	return identity, nil
}

// Identity returns a copy of the cached identity, if any.
func (c *Client) Identity() (AuthenticatedIdentity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return AuthenticatedIdentity{}, false
	}
	return c.identity.clone(), true
}

// GetUsername returns the username of the cached identity.
func (c *Client) GetUsername() (string, error) {
	identity, ok := c.Identity()
	if !ok {
		return "", errNotAuthenticated()
	}
	return identity.Username, nil
}

// IsAuthenticated reports whether Authenticate succeeded and the server
// accepted the key.
func (c *Client) IsAuthenticated() bool {
	identity, ok := c.Identity()
	return ok && identity.Authenticated
}
