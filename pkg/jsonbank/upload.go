package jsonbank

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// UploadDocument reads a JSON file from the configured filesystem and creates a
// document from it.
func (c *Client) UploadDocument(ctx context.Context, in UploadDocumentInput) (*NewDocument, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	content, err := c.readTextFile(in.FilePath)
	if err != nil {
		return nil, err
	}
	if err := requireJSON(content); err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = filepath.Base(in.FilePath)
	}

	return c.CreateDocument(ctx, CreateDocumentInput{
		Name:    name,
		Project: in.Project,
		Content: content,
		Folder:  in.Folder,
	})
}

// readTextFile maps filesystem failures to CodeFileNotFound or CodeInvalidFile.
func (c *Client) readTextFile(path string) (string, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(CodeFileNotFound, "File not found: "+path)
		}
		return "", newError(CodeInvalidFile, err.Error())
	}
	if info.IsDir() {
		return "", newError(CodeInvalidFile, "Not a file: "+path)
	}

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", newError(CodeInvalidFile, err.Error())
	}
	return string(data), nil
}
