package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folionet/cartera"
	"github.com/google/subcommands"
)

// importCmd converts a broker CSV export into the canonical JSONL ledger.
type importCmd struct {
	outputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a broker CSV export into the ledger" }
func (*importCmd) Usage() string {
	return `cta import [-o <file>] <csv-file>

  Reads a broker CSV export (comma or semicolon separated, DD/MM/YYYY dates,
  decimal comma accepted), validates every row, sorts them by date, and
  writes the records in the canonical JSONL ledger format.

Usage Examples:
# Import an export and write the default ledger file.
$ cta import movimientos.csv
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output ledger file. Defaults to the -ledger-file flag.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one CSV file argument.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	ledger, err := cartera.ImportCSV(in, *accountingCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.outputFile
	if output == "" {
		output = *ledgerFile
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := cartera.EncodeLedger(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Imported %d records into %q.\n", ledger.Len(), output)
	return subcommands.ExitSuccess
}
