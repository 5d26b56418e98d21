package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
	"github.com/jsonbankio/jsonbank-go/internal/cmd/commands/auth"
	"github.com/jsonbankio/jsonbank-go/internal/cmd/commands/document"
	"github.com/jsonbankio/jsonbank-go/internal/cmd/commands/folder"
	"github.com/jsonbankio/jsonbank-go/internal/cmd/commands/open"
	"github.com/jsonbankio/jsonbank-go/internal/version"
)

// Commands returns the CLI command factories.
func Commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := func() *base.Command { return base.NewCommand(log, ui) }

	return map[string]cli.CommandFactory{
		"meta": func() (cli.Command, error) {
			return &document.MetaCommand{Command: b()}, nil
		},
		"get": func() (cli.Command, error) {
			return &document.GetCommand{Command: b()}, nil
		},
		"create": func() (cli.Command, error) {
			return &document.CreateCommand{Command: b()}, nil
		},
		"upload": func() (cli.Command, error) {
			return &document.UploadCommand{Command: b()}, nil
		},
		"update": func() (cli.Command, error) {
			return &document.UpdateCommand{Command: b()}, nil
		},
		"delete": func() (cli.Command, error) {
			return &document.DeleteCommand{Command: b()}, nil
		},
		"folder": func() (cli.Command, error) {
			return &folder.Command{Command: b()}, nil
		},
		"folder get": func() (cli.Command, error) {
			return &folder.GetCommand{Command: b()}, nil
		},
		"folder create": func() (cli.Command, error) {
			return &folder.CreateCommand{Command: b()}, nil
		},
		"whoami": func() (cli.Command, error) {
			return &auth.WhoamiCommand{Command: b()}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{ui: ui}, nil
		},
	}
}

type versionCommand struct {
	ui cli.Ui
}

func (c *versionCommand) Synopsis() string { return "Print the version" }
func (c *versionCommand) Help() string     { return "Usage: jsonbank version" }

func (c *versionCommand) Run(_ []string) int {
	c.ui.Output(version.Version)
	return 0
}
