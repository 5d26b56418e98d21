package document

import (
	"flag"
	"fmt"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
	"github.com/jsonbankio/jsonbank-go/pkg/jsonbank"
)

// CreateCommand creates a document from inline JSON.
type CreateCommand struct {
	*base.Command

	flagProject     string
	flagName        string
	flagFolder      string
	flagIfNotExists bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a document"
}

func (c *CreateCommand) Help() string {
	return `Usage: jsonbank create -project=<project> -name=<name> [options] <content>

  Creates a document with the given JSON content. Requires the private key.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.StringVar(&c.flagProject, "project", "", "(Required) Project to create the document in.")
	f.StringVar(&c.flagName, "name", "", "(Required) Document name, e.g. data.json.")
	f.StringVar(&c.flagFolder, "folder", "", "Folder to create the document in.")
	f.BoolVar(&c.flagIfNotExists, "if-not-exists", false,
		"Return the existing document instead of failing when the name is taken.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one argument: <content>")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	in := jsonbank.CreateDocumentInput{
		Name:    c.flagName,
		Project: c.flagProject,
		Content: f.Arg(0),
		Folder:  c.flagFolder,
	}

	create := client.CreateDocument
	if c.flagIfNotExists {
		create = client.CreateDocumentIfNotExists
	}

	doc, err := create(c.Context(), in)
	if err != nil {
		return c.APIError("creating document", err)
	}
	if doc.Existed {
		c.UI.Warn(fmt.Sprintf("Document %s already existed", doc.Path))
	}
	return c.Output(doc)
}

// UploadCommand creates a document from a local JSON file.
type UploadCommand struct {
	*base.Command

	flagProject string
	flagName    string
	flagFolder  string
}

func (c *UploadCommand) Synopsis() string {
	return "Upload a JSON file as a document"
}

func (c *UploadCommand) Help() string {
	return `Usage: jsonbank upload -project=<project> [options] <file>

  Creates a document from a local JSON file. The document name defaults to the
  file name. Requires the private key.` + c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("upload", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.StringVar(&c.flagProject, "project", "", "(Required) Project to upload to.")
	f.StringVar(&c.flagName, "name", "", "Document name. Defaults to the file name.")
	f.StringVar(&c.flagFolder, "folder", "", "Folder to upload to.")
	return f
}

func (c *UploadCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one argument: <file>")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	doc, err := client.UploadDocument(c.Context(), jsonbank.UploadDocumentInput{
		FilePath: f.Arg(0),
		Project:  c.flagProject,
		Name:     c.flagName,
		Folder:   c.flagFolder,
	})
	if err != nil {
		return c.APIError("uploading document", err)
	}
	return c.Output(doc)
}

// UpdateCommand replaces the content of a document.
type UpdateCommand struct {
	*base.Command
}

func (c *UpdateCommand) Synopsis() string {
	return "Replace the content of a document"
}

func (c *UpdateCommand) Help() string {
	return `Usage: jsonbank update [options] <idOrPath> <content>

  Replaces the content of one of your documents. Requires the private key.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ContinueOnError))
	c.AddConfigFlag(f)
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 2 {
		c.UI.Error("expected two arguments: <idOrPath> <content>")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	res, err := client.UpdateOwnDocument(c.Context(), f.Arg(0), f.Arg(1))
	if err != nil {
		return c.APIError("updating document", err)
	}
	return c.Output(res)
}

// DeleteCommand deletes a document.
type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a document"
}

func (c *DeleteCommand) Help() string {
	return `Usage: jsonbank delete [options] <idOrPath>

  Deletes one of your documents. Deleting a missing document is not an error.
  Requires the private key.` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.AddConfigFlag(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one argument: <idOrPath>")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	res, err := client.DeleteDocument(c.Context(), f.Arg(0))
	if err != nil {
		return c.APIError("deleting document", err)
	}
	return c.Output(res)
}
