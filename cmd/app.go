// Package cmd implements the CLI application to value a portfolio ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/folionet/cartera"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&importCmd{}, "ledger")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing records (JSONL format)")
var accountingCurrency = flag.String("currency", "EUR", "Accounting currency all values are folded into")

// decodeLedger loads the app default ledger file. A missing file yields an
// empty ledger with a warning, not an error.
func decodeLedger() (*cartera.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, using an empty ledger instead", *ledgerFile)
		return cartera.NewLedger(*accountingCurrency)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return cartera.DecodeLedger(f, *accountingCurrency)
}

// loadQuotes resolves the optional quote snapshot: a local file path, or an
// HTTP address. Both empty means no snapshot, last-seen prices apply.
func loadQuotes(path, addr string) (cartera.Quotes, error) {
	switch {
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open quote snapshot %q: %w", path, err)
		}
		defer f.Close()
		return cartera.DecodeQuotes(f, *accountingCurrency)
	case addr != "":
		return cartera.FetchQuotes(addr, *accountingCurrency)
	default:
		return nil, nil
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer fails (e.g. no TTY capabilities).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
