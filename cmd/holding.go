package cmd

import (
	"context"
	"flag"

	"github.com/folionet/cartera"
	"github.com/folionet/cartera/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date       string
	quotesFile string
	quotesURL  string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the open positions table" }
func (*holdingCmd) Usage() string {
	return `cta holding [-d <date>] [-quotes <file> | -quotes-url <addr>]

  Displays the open positions valued at the latest known prices.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", cartera.Today().String(), "Report date for the holdings.")
	f.StringVar(&c.quotesFile, "quotes", "", "Quote snapshot file overriding last-seen prices.")
	f.StringVar(&c.quotesURL, "quotes-url", "", "Quote snapshot HTTP address overriding last-seen prices.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, status := buildSummary(c.date, c.quotesFile, c.quotesURL)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.HoldingsMarkdown(summary))
	return subcommands.ExitSuccess
}
