package renderer

import (
	"fmt"
	"strings"

	"github.com/folionet/cartera"
)

// LogMarkdown renders a chronological log of every ledger record together
// with its impact on the position: the running quantity and cost basis of
// the record's symbol after the record is applied.
func LogMarkdown(l *cartera.Ledger) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transaction Log (%s)\n\n", l.Currency())
	if l.Len() == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Operation | Symbol | Quantity | Price | Amount | Position | Cost Basis |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|")

	state := cartera.NewState(l.Currency())
	for _, r := range l.Records() {
		state = state.Apply(r)
		pos := state.Position(r.Symbol)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date,
			r.Operation,
			r.Symbol,
			r.Quantity,
			r.Price,
			r.Amount(),
			pos.Quantity,
			pos.Cost,
		)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Realized P&L to date: %s\n", state.TotalRealized().SignedString())

	return b.String()
}
