package document

import (
	"flag"
	"fmt"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
)

// MetaCommand prints document metadata.
type MetaCommand struct {
	*base.Command

	flagOwn bool
}

func (c *MetaCommand) Synopsis() string {
	return "Show document metadata"
}

func (c *MetaCommand) Help() string {
	return `Usage: jsonbank meta [options] <idOrPath>

  Prints the metadata of a public document, or of one of your own documents
  with -own (requires the public key).` + c.Flags().Help()
}

func (c *MetaCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("meta", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.BoolVar(&c.flagOwn, "own", false, "Read one of your own documents.")
	return f
}

func (c *MetaCommand) Run(args []string) int {
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

	getMeta := client.GetDocumentMeta
	if c.flagOwn {
		getMeta = client.GetOwnDocumentMeta
	}

	meta, err := getMeta(c.Context(), f.Arg(0))
	if err != nil {
		return c.APIError("getting document metadata", err)
	}
	return c.Output(meta)
}

// GetCommand prints document content.
type GetCommand struct {
	*base.Command

	flagOwn    bool
	flagGithub bool
}

func (c *GetCommand) Synopsis() string {
	return "Print document content"
}

func (c *GetCommand) Help() string {
	return `Usage: jsonbank get [options] <idOrPath>

  Prints the content of a public document. With -own, reads one of your own
  documents; with -github, reads "{owner}/{repo}/{file}" from GitHub.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.BoolVar(&c.flagOwn, "own", false, "Read one of your own documents.")
	f.BoolVar(&c.flagGithub, "github", false, "Read a public JSON file hosted on GitHub.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one argument: <idOrPath>")
		return 1
	}
	if c.flagOwn && c.flagGithub {
		c.UI.Error("-own and -github cannot be combined")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	get := client.GetContentAsString
	switch {
	case c.flagOwn:
		get = client.GetOwnContentAsString
	case c.flagGithub:
		get = client.GetGithubContentAsString
	}

	content, err := get(c.Context(), f.Arg(0))
	if err != nil {
		return c.APIError("getting content", err)
	}
	c.UI.Output(content)
	return 0
}
