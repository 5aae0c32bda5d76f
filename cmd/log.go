package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folionet/cartera/renderer"
	"github.com/google/subcommands"
)

type logCmd struct{}

func (*logCmd) Name() string { return "log" }
func (*logCmd) Synopsis() string {
	return "display a chronological log of all records and their impact on the positions"
}
func (*logCmd) Usage() string {
	return `cta log

  Displays every ledger record in chronological order with the running
  position and cost basis of its symbol.
`
}

func (*logCmd) SetFlags(_ *flag.FlagSet) {}

func (*logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogMarkdown(ledger))
	return subcommands.ExitSuccess
}
