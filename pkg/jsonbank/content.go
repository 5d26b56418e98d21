package jsonbank

import (
	"context"
	"net/http"
)

// ===================================================================
// Content
// ===================================================================
// Public reads need no key; own reads require the public key.

// GetContent decodes the public document at idOrPath into v.
func (c *Client) GetContent(ctx context.Context, idOrPath string, v any) error {
	return c.getInto(ctx, c.publicURL("f", idOrPath), false, v)
}

// GetContentAsString returns the public document at idOrPath as raw text.
func (c *Client) GetContentAsString(ctx context.Context, idOrPath string) (string, error) {
	return c.getText(ctx, c.publicURL("f", idOrPath), false)
}

// GetGithubContent decodes a public GitHub-hosted JSON file into v. path is
// "{owner}/{repo}/{file}" and is read from the repository's default branch.
func (c *Client) GetGithubContent(ctx context.Context, path string, v any) error {
	return c.getInto(ctx, c.publicURL("gh", path), false, v)
}

// GetGithubContentAsString returns a public GitHub-hosted JSON file as raw text.
func (c *Client) GetGithubContentAsString(ctx context.Context, path string) (string, error) {
	return c.getText(ctx, c.publicURL("gh", path), false)
}

// GetOwnContent decodes one of the key holder's documents into v.
func (c *Client) GetOwnContent(ctx context.Context, idOrPath string, v any) error {
	return c.getInto(ctx, c.v1URL("file", idOrPath), true, v)
}

// GetOwnContentAsString returns one of the key holder's documents as raw text.
func (c *Client) GetOwnContentAsString(ctx context.Context, idOrPath string) (string, error) {
	return c.getText(ctx, c.v1URL("file", idOrPath), true)
}

func (c *Client) getInto(ctx context.Context, url string, requirePublic bool, v any) error {
	resp, err := c.dispatch(ctx, request{
		method:        http.MethodGet,
		url:           url,
		requirePublic: requirePublic,
	})
	if err != nil {
		return err
	}
	return decodeInto(resp, v)
}

func (c *Client) getText(ctx context.Context, url string, requirePublic bool) (string, error) {
	resp, err := c.dispatch(ctx, request{
		method:        http.MethodGet,
		url:           url,
		requirePublic: requirePublic,
	})
	if err != nil {
		return "", err
	}
	return decodeText(resp)
}
