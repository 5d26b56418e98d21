package jsonbank

import (
	"context"
	"net/http"
)

// ===================================================================
// Documents
// ===================================================================

// GetDocumentMeta returns the metadata of a public document.
func (c *Client) GetDocumentMeta(ctx context.Context, idOrPath string) (*DocumentMeta, error) {
	resp, err := c.dispatch(ctx, request{
		method: http.MethodGet,
		url:    c.publicURL("meta", "f", idOrPath),
	})
	if err != nil {
		return nil, err
	}
	return decodeValid[DocumentMeta](resp)
}

// GetOwnDocumentMeta returns the metadata of one of the key holder's documents.
func (c *Client) GetOwnDocumentMeta(ctx context.Context, idOrPath string) (*DocumentMeta, error) {
	resp, err := c.dispatch(ctx, request{
		method:        http.MethodGet,
		url:           c.v1URL("meta", "file", idOrPath),
		requirePublic: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeValid[DocumentMeta](resp)
}

// HasOwnDocument reports whether the document exists. A "notFound" error
// means false; any other error is returned.
func (c *Client) HasOwnDocument(ctx context.Context, idOrPath string) (bool, error) {
	if _, err := c.GetOwnDocumentMeta(ctx, idOrPath); err != nil {
		if IsCode(err, CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateDocument creates a document. Input is checked before any request is
// sent.
func (c *Client) CreateDocument(ctx context.Context, in CreateDocumentInput) (*NewDocument, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	body := params{
		"name":    in.Name,
		"project": in.Project,
		"content": in.Content,
	}
	if in.Folder != "" {
		body["folder"] = in.Folder
	}

	resp, err := c.dispatch(ctx, request{
		method:         http.MethodPost,
		url:            c.v1URL("project", in.Project, "document"),
		body:           body,
		requirePrivate: true,
	})
	if err != nil {
		return nil, err
	}

	doc, err := decodeValid[NewDocument](resp)
	if err != nil {
		return nil, err
	}
	doc.Existed = false
	return doc, nil
}

// CreateDocumentIfNotExists creates a document, or returns the existing one
// with Existed set when the server reports "name.exists".
func (c *Client) CreateDocumentIfNotExists(ctx context.Context, in CreateDocumentInput) (*NewDocument, error) {
	doc, err := c.CreateDocument(ctx, in)
	if err == nil {
		return doc, nil
	}
	if !IsCode(err, CodeNameExists) {
		return nil, err
	}

	path := resourcePath(in.Project, in.Folder, in.Name)
	c.logger.Debug("document exists, fetching metadata", "path", path)

	meta, err := c.GetOwnDocumentMeta(ctx, path)
	if err != nil {
		return nil, err
	}

	return &NewDocument{
		ID:        meta.ID,
		Name:      in.Name,
		Path:      meta.Path,
		Project:   meta.Project,
		CreatedAt: meta.CreatedAt,
		Existed:   true,
	}, nil
}

// UpdateOwnDocument replaces the content of one of the key holder's documents.
func (c *Client) UpdateOwnDocument(ctx context.Context, idOrPath, content string) (*UpdatedDocument, error) {
	if err := requireJSON(content); err != nil {
		return nil, err
	}

	resp, err := c.dispatch(ctx, request{
		method:         http.MethodPost,
		url:            c.v1URL("file", idOrPath),
		body:           params{"content": content},
		requirePrivate: true,
	})
	if err != nil {
		return nil, err
	}

	updated, err := decode[UpdatedDocument](resp)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocument deletes one of the key holder's documents. Deleting a
// document that does not exist returns Deleted=false and no error.
func (c *Client) DeleteDocument(ctx context.Context, idOrPath string) (*DeletedDocument, error) {
	resp, err := c.dispatch(ctx, request{
		method:         http.MethodDelete,
		url:            c.v1URL("file", idOrPath),
		requirePrivate: true,
	})
	if err != nil {
		return nil, err
	}

	deleted, err := decode[DeletedDocument](resp)
	if err != nil {
		if IsCode(err, CodeNotFound) {
			c.logger.Debug("document already absent", "id_or_path", idOrPath)
			return &DeletedDocument{Deleted: false}, nil
		}
		return nil, err
	}
	return &deleted, nil
}
