package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/folionet/cartera"
	"github.com/folionet/cartera/agent"
	"github.com/folionet/cartera/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI analyst.
type assistCmd struct {
	quotesFile string
	quotesURL  string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "ask the AI analyst to review the portfolio summary"
}
func (*assistCmd) Usage() string {
	return `cta assist [-quotes <file> | -quotes-url <addr>] [question...]

  Computes the portfolio summary and asks the AI analyst to review it.
  Extra arguments form the question; without them the analyst gives a
  general review. Requires a configured Gemini API key.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quotesFile, "quotes", "", "Quote snapshot file overriding last-seen prices.")
	f.StringVar(&c.quotesURL, "quotes-url", "", "Quote snapshot HTTP address overriding last-seen prices.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.Join(f.Args(), " ")

	summary, status := buildSummary(cartera.Today().String(), c.quotesFile, c.quotesURL)
	if status != subcommands.ExitSuccess {
		return status
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst, err := agent.NewAnalyst(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the analyst:", err)
		return subcommands.ExitFailure
	}

	answer, err := analyst.Review(ctx, renderer.SummaryMarkdown(summary), question)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(answer)
	return subcommands.ExitSuccess
}
