package jsonbank

import (
	"context"
	"net/http"
)

// ===================================================================
// Folders
// ===================================================================

// CreateFolder creates a folder, optionally inside a parent folder.
func (c *Client) CreateFolder(ctx context.Context, in CreateFolderInput) (*Folder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	body := params{
		"name":    in.Name,
		"project": in.Project,
	}
	if in.Folder != "" {
		body["folder"] = in.Folder
	}

	resp, err := c.dispatch(ctx, request{
		method:         http.MethodPost,
		url:            c.v1URL("project", in.Project, "folder"),
		body:           body,
		requirePrivate: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeValid[Folder](resp)
}

// CreateFolderIfNotExists creates a folder, or fetches the existing one when
// the server reports "name.exists". The bool is true when it already existed.
func (c *Client) CreateFolderIfNotExists(ctx context.Context, in CreateFolderInput) (*Folder, bool, error) {
	folder, err := c.CreateFolder(ctx, in)
	if err == nil {
		return folder, false, nil
	}
	if !IsCode(err, CodeNameExists) {
		return nil, false, err
	}

	path := resourcePath(in.Project, in.Folder, in.Name)
	c.logger.Debug("folder exists, fetching it", "path", path)

	folder, err = c.GetFolder(ctx, path)
	if err != nil {
		return nil, false, err
	}
	return folder, true, nil
}

// GetFolder returns a folder without stats.
func (c *Client) GetFolder(ctx context.Context, idOrPath string) (*Folder, error) {
	return c.getFolder(ctx, idOrPath, false)
}

// GetFolderWithStats returns a folder with Stats populated by the server.
func (c *Client) GetFolderWithStats(ctx context.Context, idOrPath string) (*Folder, error) {
	return c.getFolder(ctx, idOrPath, true)
}

func (c *Client) getFolder(ctx context.Context, idOrPath string, stats bool) (*Folder, error) {
	var query params
	if stats {
		query = params{"stats": true}
	}

	resp, err := c.dispatch(ctx, request{
		method:        http.MethodGet,
		url:           c.v1URL("folder", idOrPath),
		body:          query,
		requirePublic: true,
	})
	if err != nil {
		return nil, err
	}

	folder, err := decodeValid[Folder](resp)
	if err != nil {
		return nil, err
	}
	if !stats {
		folder.Stats = nil
	}
	return folder, nil
}
