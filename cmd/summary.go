package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folionet/cartera"
	"github.com/folionet/cartera/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date       string
	quotesFile string
	quotesURL  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio valuation summary" }
func (*summaryCmd) Usage() string {
	return `cta summary [-d <date>] [-quotes <file> | -quotes-url <addr>]

  Displays the full portfolio summary: holdings valued at the latest known
  prices, unrealized and realized P&L, the annualized money-weighted return,
  and warnings about unrecognized ledger rows.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", cartera.Today().String(), "Report date for the summary.")
	f.StringVar(&c.quotesFile, "quotes", "", "Quote snapshot file overriding last-seen prices.")
	f.StringVar(&c.quotesURL, "quotes-url", "", "Quote snapshot HTTP address overriding last-seen prices.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, status := buildSummary(c.date, c.quotesFile, c.quotesURL)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}

// buildSummary is the shared pipeline behind the report subcommands:
// parse the date, load the ledger and the optional snapshot, assemble.
func buildSummary(date, quotesFile, quotesURL string) (*cartera.Summary, subcommands.ExitStatus) {
	on, err := cartera.ParseDate(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	quotes, err := loadQuotes(quotesFile, quotesURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	summary, err := cartera.NewSummary(ledger, on, quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return summary, subcommands.ExitSuccess
}
