package base

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/jsonbankio/jsonbank-go/internal/config"
	"github.com/jsonbankio/jsonbank-go/pkg/jsonbank"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is where configuration files are read from.
	FS afero.Fs

	flagConfig string
}

// NewCommand creates a Command reading configuration from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}
}

// AddConfigFlag registers the -config flag on f.
func (c *Command) AddConfigFlag(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL (.hcl, .json) or YAML (.yaml, .yml) configuration file. "+
			"[JSONBANK_HOST, JSONBANK_PUBLIC_KEY, JSONBANK_PRIVATE_KEY] override it.",
	)
}

// Client loads the configuration and builds an API client.
func (c *Command) Client() (*jsonbank.Client, error) {
	cfg, err := config.Load(c.FS, c.flagConfig)
	if err != nil {
		return nil, err
	}

	logger := c.Log
	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		logger.SetLevel(level)
	}

	return jsonbank.New(cfg.ClientConfig(logger)), nil
}

// Context returns the context commands run API calls with.
func (c *Command) Context() context.Context {
	return context.Background()
}

// Output prints v as indented JSON.
func (c *Command) Output(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}

// APIError reports err, including the JsonBank error code when there is one.
func (c *Command) APIError(action string, err error) int {
	if code := jsonbank.ErrorCode(err); code != "" {
		c.UI.Error(fmt.Sprintf("error %s: [%s] %v", action, code, err))
	} else {
		c.UI.Error(fmt.Sprintf("error %s: %v", action, err))
	}
	return 1
}
