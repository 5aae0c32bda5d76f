package cartera

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Quote is the latest known market data for one symbol: the per-unit price
// in the symbol's native currency and the native-to-accounting FX rate.
type Quote struct {
	Symbol string
	Price  Money           // per unit, native currency
	FXRate decimal.Decimal // native to accounting currency
}

// Quotes maps symbols to their latest known quote.
type Quotes map[string]Quote

// Merge returns a copy of q with the override quotes applied on top.
// Symbols absent from the override keep their original quote.
func (q Quotes) Merge(override Quotes) Quotes {
	merged := maps.Clone(q)
	if merged == nil {
		merged = make(Quotes)
	}
	for sym, quote := range override {
		merged[sym] = quote
	}
	return merged
}

// LastQuotes derives a quote per symbol from the chronologically last record
// seen for that symbol: its native price, native currency and FX rate. This
// is the fallback price source when no external snapshot is available.
func (l *Ledger) LastQuotes() Quotes {
	quotes := make(Quotes)
	for _, r := range l.Records() {
		// Records are sorted, so the last write per symbol wins.
		quotes[r.Symbol] = Quote{Symbol: r.Symbol, Price: r.NativePrice, FXRate: r.FXRate}
	}
	return quotes
}

// Holding is the valued view of one open position at report time.
type Holding struct {
	Symbol              string
	Quantity            Quantity
	AverageCost         Money // per unit, accounting currency
	LastPrice           Money // per unit, native currency, for display
	Cost                Money // cost basis of the open quantity, accounting currency
	MarketValue         Money // accounting currency
	UnrealizedPL        Money // accounting currency
	UnrealizedPLPercent Percent
	RealizedPL          Money // realized on this symbol since inception
}

// Valuation prices the terminal fold state at the latest known quotes.
// Only symbols with a positive held quantity produce a Holding row; fully
// closed positions contribute realized P&L but no row.
type Valuation struct {
	Currency          string
	Holdings          []Holding // sorted by symbol
	TotalMarketValue  Money
	TotalCost         Money // cost basis of the open positions ("invested")
	TotalUnrealizedPL Money
}

// NewValuation values every open position of the state using the given
// quotes. A symbol with no quote is valued at a zero price, which shows up
// as a fully unrealized loss rather than a missing row.
func NewValuation(state State, quotes Quotes) Valuation {
	currency := state.Currency()
	v := Valuation{
		Currency:          currency,
		TotalMarketValue:  M(0, currency),
		TotalCost:         M(0, currency),
		TotalUnrealizedPL: M(0, currency),
	}

	for pos := range state.Positions() {
		if !pos.Quantity.IsPositive() {
			continue
		}

		quote := quotes[pos.Symbol]
		price := quote.Price
		// The FX rate only applies when the quote is not already in the
		// accounting currency.
		if price.Currency() != "" && price.Currency() != currency {
			price = price.MulRate(quote.FXRate, currency)
		} else {
			price = M(price.value, currency)
		}

		marketValue := price.Mul(pos.Quantity)
		unrealized := marketValue.Sub(pos.Cost)
		var pct Percent
		if !pos.Cost.IsZero() {
			pct = Percent(unrealized.AsFloat() / pos.Cost.AsFloat() * 100)
		}

		v.Holdings = append(v.Holdings, Holding{
			Symbol:              pos.Symbol,
			Quantity:            pos.Quantity,
			AverageCost:         pos.AverageCost(),
			LastPrice:           quote.Price,
			Cost:                pos.Cost,
			MarketValue:         marketValue,
			UnrealizedPL:        unrealized,
			UnrealizedPLPercent: pct,
			RealizedPL:          pos.Realized,
		})

		v.TotalMarketValue = v.TotalMarketValue.Add(marketValue)
		v.TotalCost = v.TotalCost.Add(pos.Cost)
		v.TotalUnrealizedPL = v.TotalUnrealizedPL.Add(unrealized)
	}
	return v
}
