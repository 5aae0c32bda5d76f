package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/folionet/cartera"
)

// SummaryMarkdown renders the full portfolio summary to a markdown string:
// totals, holdings, the money-weighted return and, when the fold had
// anything to warn about, a diagnostics section.
func SummaryMarkdown(s *cartera.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", s.Date)

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Market Value | %s |\n", s.TotalMarketValue)
	fmt.Fprintf(&b, "| Invested | %s |\n", s.TotalCost)
	fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", s.TotalUnrealizedPL.SignedString())
	fmt.Fprintf(&b, "| Realized P&L | %s |\n", s.TotalRealizedPL.SignedString())
	fmt.Fprintf(&b, "| Annualized Return (XIRR) | %s |\n", s.InternalRate.SignedString())
	fmt.Fprintln(&b)

	if len(s.Holdings) > 0 {
		fmt.Fprint(&b, "## Holdings\n\n")
		writeHoldingsTable(&b, s.Holdings)
	}

	diagnosticsBlock(&b, s.Diagnostics)

	return b.String()
}

// HoldingsMarkdown renders only the holdings table.
func HoldingsMarkdown(s *cartera.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", s.Date)
	if len(s.Holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}
	writeHoldingsTable(&b, s.Holdings)
	return b.String()
}

func writeHoldingsTable(w io.Writer, holdings []cartera.Holding) {
	fmt.Fprintln(w, "| Symbol | Quantity | Avg Cost | Last Price | Market Value | Unrealized | % | Realized |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Quantity,
			h.AverageCost,
			h.LastPrice,
			h.MarketValue,
			h.UnrealizedPL.SignedString(),
			h.UnrealizedPLPercent.SignedString(),
			h.RealizedPL.SignedString(),
		)
	}
	fmt.Fprintln(w)
}

// diagnosticsBlock prints the warnings section only when there is something
// to warn about.
func diagnosticsBlock(w io.Writer, d cartera.Diagnostics) {
	ConditionalBlock(w, func(bw io.Writer) bool {
		if d.Clean() {
			return false
		}
		fmt.Fprint(bw, "## Warnings\n\n")
		if len(d.IgnoredOperations) > 0 {
			tokens := make([]string, 0, len(d.IgnoredOperations))
			for token := range d.IgnoredOperations {
				tokens = append(tokens, token)
			}
			slices.Sort(tokens)
			fmt.Fprintln(bw, "| Ignored Operation | Rows |")
			fmt.Fprintln(bw, "|:---|---:|")
			for _, token := range tokens {
				fmt.Fprintf(bw, "| %s | %d |\n", token, d.IgnoredOperations[token])
			}
			fmt.Fprintln(bw)
		}
		if d.OversoldRows > 0 {
			fmt.Fprintf(bw, "%d sell row(s) exceeded the held quantity and were clamped.\n\n", d.OversoldRows)
		}
		fmt.Fprintf(bw, "%d rows processed in total.\n", d.TotalRows)
		return true
	})
}
