package folder

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
	"github.com/jsonbankio/jsonbank-go/pkg/jsonbank"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage folders"
}

func (c *Command) Help() string {
	return `Usage: jsonbank folder <subcommand> [options] [args]

  This command groups subcommands for reading and creating folders.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// GetCommand prints a folder.
type GetCommand struct {
	*base.Command

	flagStats bool
}

func (c *GetCommand) Synopsis() string {
	return "Show a folder"
}

func (c *GetCommand) Help() string {
	return `Usage: jsonbank folder get [options] <idOrPath>

  Prints one of your folders. Requires the public key.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("folder get", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.BoolVar(&c.flagStats, "stats", false, "Include document and folder counts.")
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

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	get := client.GetFolder
	if c.flagStats {
		get = client.GetFolderWithStats
	}

	folder, err := get(c.Context(), f.Arg(0))
	if err != nil {
		return c.APIError("getting folder", err)
	}
	return c.Output(folder)
}

// CreateCommand creates a folder.
type CreateCommand struct {
	*base.Command

	flagProject     string
	flagName        string
	flagFolder      string
	flagIfNotExists bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a folder"
}

func (c *CreateCommand) Help() string {
	return `Usage: jsonbank folder create -project=<project> -name=<name> [options]

  Creates a folder, optionally inside a parent folder. Requires the private key.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("folder create", flag.ContinueOnError))
	c.AddConfigFlag(f)
	f.StringVar(&c.flagProject, "project", "", "(Required) Project to create the folder in.")
	f.StringVar(&c.flagName, "name", "", "(Required) Folder name.")
	f.StringVar(&c.flagFolder, "folder", "", "Parent folder.")
	f.BoolVar(&c.flagIfNotExists, "if-not-exists", false,
		"Return the existing folder instead of failing when the name is taken.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	in := jsonbank.CreateFolderInput{
		Name:    c.flagName,
		Project: c.flagProject,
		Folder:  c.flagFolder,
	}

	var folder *jsonbank.Folder
	if c.flagIfNotExists {
		var existed bool
		folder, existed, err = client.CreateFolderIfNotExists(c.Context(), in)
		if err == nil && existed {
			c.UI.Warn(fmt.Sprintf("Folder %s already existed", folder.Path))
		}
	} else {
		folder, err = client.CreateFolder(c.Context(), in)
	}
	if err != nil {
		return c.APIError("creating folder", err)
	}
	return c.Output(folder)
}
