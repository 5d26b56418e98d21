package open

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	// OpenURL launches a browser. Replaced in tests.
	OpenURL func(url string) error
}

func (c *Command) Synopsis() string {
	return "Open a public document in the browser"
}

func (c *Command) Help() string {
	return `Usage: jsonbank open [options] <idOrPath>

  Checks that the public document exists, then opens its content URL in the
  default browser.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))
	c.AddConfigFlag(f)
	return f
}

func (c *Command) Run(args []string) int {
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

	meta, err := client.GetDocumentMeta(c.Context(), f.Arg(0))
	if err != nil {
		return c.APIError("getting document metadata", err)
	}

	url := client.Endpoints().Public + "/f/" + meta.ID
	openURL := c.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}
	if err := openURL(url); err != nil {
		c.UI.Error(fmt.Sprintf("error opening browser: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Opened %s", url))
	return 0
}
