package cartera

import "errors"

// Summary provides a comprehensive, at-a-glance overview of the portfolio's
// state on a given date: holdings, totals, the money-weighted return and the
// ingestion diagnostics. It is a plain value, ready to serialize or render.
type Summary struct {
	Date              Date
	Currency          string // accounting currency
	TotalMarketValue  Money
	TotalCost         Money // cost basis of the open positions
	TotalUnrealizedPL Money
	TotalRealizedPL   Money // over every symbol, open or closed
	InternalRate      Percent
	Holdings          []Holding // sorted by symbol, open positions only
	Diagnostics       Diagnostics
}

// NewSummary assembles the full portfolio report for the ledger on a given
// date: it folds the cost-basis state, values the open positions at the
// last-seen quotes (overridden by the snapshot when one is given), and
// derives the money-weighted return from the raw cash-flow history closed by
// a synthetic liquidation at the total market value.
//
// A solver that gives up is reported as a zero rate, never as a failure:
// the summary is a best-effort dashboard figure, and the Diagnostics carry
// everything worth warning about.
func NewSummary(l *Ledger, on Date, snapshot Quotes) (*Summary, error) {
	if l == nil || l.Currency() == "" {
		return nil, errors.New("ledger accounting currency is not set")
	}

	state := l.Reduce()
	quotes := l.LastQuotes().Merge(snapshot)
	valuation := NewValuation(state, quotes)

	rate, err := l.InternalRate(valuation.TotalMarketValue, on)
	if errors.Is(err, ErrNoSolution) {
		rate = 0
	} else if err != nil {
		return nil, err
	}

	return &Summary{
		Date:              on,
		Currency:          l.Currency(),
		TotalMarketValue:  valuation.TotalMarketValue,
		TotalCost:         valuation.TotalCost,
		TotalUnrealizedPL: valuation.TotalUnrealizedPL,
		TotalRealizedPL:   state.TotalRealized(),
		InternalRate:      rate,
		Holdings:          valuation.Holdings,
		Diagnostics:       state.Diagnostics(),
	}, nil
}
