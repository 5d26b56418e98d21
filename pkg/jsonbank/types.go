package jsonbank

import "slices"

// ContentSize is the stored size of a document.
type ContentSize struct {
	Number uint64 `json:"number"`
	String string `json:"string"`
}

// DocumentMeta describes a stored document.
type DocumentMeta struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Project     string       `json:"project"`
	Path        string       `json:"path"`
	FolderID    *string      `json:"folderId,omitempty"`
	ContentSize *ContentSize `json:"contentSize,omitempty"`
	UpdatedAt   string       `json:"updatedAt"`
	CreatedAt   string       `json:"createdAt"`
}

func (m *DocumentMeta) validate() error {
	return requiredIdentity(m, &m.ID, &m.Project, &m.Path)
}

// FolderStats counts the children of a folder.
type FolderStats struct {
	Documents int32 `json:"documents"`
	Folders   int32 `json:"folders"`
}

// Folder is a named group of documents within a project.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Project   string `json:"project"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// Stats is only populated by GetFolderWithStats.
	Stats *FolderStats `json:"stats,omitempty"`
}

func (f *Folder) validate() error {
	return requiredIdentity(f, &f.ID, &f.Project, &f.Path)
}

// NewDocument is the result of creating a document.
type NewDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Project   string `json:"project"`
	CreatedAt string `json:"createdAt"`

	// Existed is set by CreateDocumentIfNotExists when the document was
	// already there and its metadata was fetched instead. The server never
	// sends it.
	Existed bool `json:"-"`
}

func (d *NewDocument) validate() error {
	return requiredIdentity(d, &d.ID, &d.Project, &d.Path)
}

// DeletedDocument is the result of DeleteDocument.
type DeletedDocument struct {
	Deleted bool `json:"deleted"`
}

// UpdatedDocument is the result of UpdateOwnDocument.
type UpdatedDocument struct {
	Changed bool `json:"changed"`
}

// APIKey describes the key used to authenticate.
type APIKey struct {
	Title    string   `json:"title"`
	Projects []string `json:"projects"`
}

// AuthenticatedIdentity is the result of Authenticate.
type AuthenticatedIdentity struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	APIKey        APIKey `json:"apiKey"`
}

// clone returns a copy that shares no memory with i.
func (i AuthenticatedIdentity) clone() AuthenticatedIdentity {
	i.APIKey.Projects = slices.Clone(i.APIKey.Projects)
	return i
}

// CreateDocumentInput describes a document to create.
type CreateDocumentInput struct {
	Name    string
	Project string
	// Content must be valid JSON text.
	Content string
	Folder  string
}

// CreateFolderInput describes a folder to create.
type CreateFolderInput struct {
	Name    string
	Project string
	// Folder is the optional parent folder.
	Folder string
}

// UploadDocumentInput describes a file to upload as a document.
type UploadDocumentInput struct {
	FilePath string
	Project  string
	// Name defaults to the base name of FilePath.
	Name   string
	Folder string
}
