package auth

import (
	"flag"
	"fmt"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
)

type WhoamiCommand struct {
	*base.Command
}

func (c *WhoamiCommand) Synopsis() string {
	return "Authenticate and show the key owner"
}

func (c *WhoamiCommand) Help() string {
	return `Usage: jsonbank whoami [options]

  Authenticates with the public key and prints the username, key title and the
  projects the key can access.` + c.Flags().Help()
}

func (c *WhoamiCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("whoami", flag.ContinueOnError))
	c.AddConfigFlag(f)
	return f
}

func (c *WhoamiCommand) Run(args []string) int {
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

	identity, err := client.Authenticate(c.Context())
	if err != nil {
		return c.APIError("authenticating", err)
	}
	if !client.IsAuthenticated() {
		c.UI.Error("key was not accepted")
		return 1
	}

	username, err := client.GetUsername()
	if err != nil {
		return c.APIError("reading username", err)
	}
	c.Log.Debug("authenticated", "username", username)

	return c.Output(identity)
}
