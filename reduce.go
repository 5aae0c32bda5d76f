package cartera

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// closeEpsilon is the quantity below which a position is considered fully
// closed. Ingested quantities come from float-normalized broker exports, so
// a sell meant to close a position can leave a sub-nanoshare residue.
var closeEpsilon = decimal.New(1, -9) // 1e-9

// Position is the running weighted-average cost-basis state of one symbol.
type Position struct {
	Symbol   string
	Quantity Quantity // units currently held
	Cost     Money    // cost basis of Quantity, accounting currency
	Realized Money    // P&L locked in by sells of this symbol since inception
}

// AverageCost returns the blended per-unit cost of the position, or a zero
// amount when nothing is held.
func (p Position) AverageCost() Money {
	if p.Quantity.IsZero() {
		return M(0, p.Cost.Currency())
	}
	return p.Cost.Div(p.Quantity)
}

// closed reports whether the held quantity fell to the close-out threshold.
func (p Position) closed() bool {
	return p.Quantity.value.LessThanOrEqual(closeEpsilon)
}

// Diagnostics tallies the rows that the costing fold could not act on.
// It lets a caller warn the user about unrecognized data without aborting
// the computation.
type Diagnostics struct {
	// IgnoredOperations counts rows per raw lower-cased operation token that
	// mapped to neither a buy nor a sell. Blank tokens are not tallied.
	IgnoredOperations map[string]int
	// OversoldRows counts sells without a position or exceeding the held
	// quantity; such sells realize P&L only on the covered part.
	OversoldRows int
	// TotalRows is the number of records folded, recognized or not.
	TotalRows int
}

func (d Diagnostics) clone() Diagnostics {
	d.IgnoredOperations = maps.Clone(d.IgnoredOperations)
	return d
}

// Clean reports whether the fold saw nothing worth warning about.
func (d Diagnostics) Clean() bool {
	return len(d.IgnoredOperations) == 0 && d.OversoldRows == 0
}

// State is the accumulator of the cost-basis fold. It is a value: Apply
// never mutates its receiver, it returns the successor state. Replaying the
// same records against a kept State always yields the same result.
type State struct {
	currency  string
	positions map[string]Position
	realized  Money
	diags     Diagnostics
}

// NewState returns the empty fold state for an accounting currency.
func NewState(accountingCurrency string) State {
	return State{
		currency: accountingCurrency,
		realized: M(0, accountingCurrency),
	}
}

// Currency returns the accounting currency the state folds into.
func (s State) Currency() string { return s.currency }

// Position returns the current state of a symbol. The zero Position is
// returned for symbols that never traded.
func (s State) Position(symbol string) Position {
	if p, ok := s.positions[symbol]; ok {
		return p
	}
	return Position{Symbol: symbol, Cost: M(0, s.currency), Realized: M(0, s.currency)}
}

// Positions iterates over all symbol positions, sorted by symbol. Closed
// positions are included; they carry their realized P&L.
func (s State) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		symbols := slices.Collect(maps.Keys(s.positions))
		slices.Sort(symbols)
		for _, sym := range symbols {
			if !yield(s.positions[sym]) {
				return
			}
		}
	}
}

// TotalRealized returns the realized P&L accumulated over every symbol,
// open or closed.
func (s State) TotalRealized() Money { return s.realized }

// Diagnostics returns a copy of the fold's diagnostic tally.
func (s State) Diagnostics() Diagnostics { return s.diags.clone() }

// Apply folds one record into the state and returns the successor state.
// The receiver is left untouched.
//
// Buys add quantity and cost. Sells realize P&L against the current
// weighted-average cost and reduce the position; a sell without a position,
// or beyond the held quantity, is clamped to what is actually held and
// counted in the diagnostics. Records with an unrecognized operation token
// are tallied and otherwise skipped; records with a blank token are skipped
// silently.
func (s State) Apply(r Record) State {
	next := s
	next.positions = maps.Clone(s.positions)
	next.diags = s.diags.clone()
	next.diags.TotalRows++

	switch r.Side {
	case SideBuy:
		pos := next.Position(r.Symbol)
		pos.Quantity = pos.Quantity.Add(r.Quantity)
		pos.Cost = pos.Cost.Add(r.Amount())
		next.setPosition(pos)

	case SideSell:
		pos := next.Position(r.Symbol)
		if pos.Quantity.IsZero() {
			// Sell with no position: no state to realize against.
			next.diags.OversoldRows++
			return next
		}
		covered := r.Quantity
		if covered.GreaterThan(pos.Quantity) {
			covered = pos.Quantity
			next.diags.OversoldRows++
		}
		avg := pos.Cost.Div(pos.Quantity)
		costOfSale := avg.Mul(covered)
		gain := r.Price.Mul(covered).Sub(costOfSale)
		pos.Realized = pos.Realized.Add(gain)
		next.realized = next.realized.Add(gain)
		pos.Quantity = pos.Quantity.Sub(covered)
		pos.Cost = pos.Cost.Sub(costOfSale)
		if pos.closed() {
			pos.Quantity = Q(0)
			pos.Cost = M(0, next.currency)
		}
		next.setPosition(pos)

	default:
		token := strings.ToLower(strings.TrimSpace(r.Operation))
		if token == "" {
			// Not an operation at all, not an anomaly either.
			return next
		}
		if next.diags.IgnoredOperations == nil {
			next.diags.IgnoredOperations = make(map[string]int)
		}
		next.diags.IgnoredOperations[token]++
	}
	return next
}

func (s *State) setPosition(p Position) {
	if s.positions == nil {
		s.positions = make(map[string]Position)
	}
	s.positions[p.Symbol] = p
}

// Reduce folds the whole ledger, in chronological order, into its terminal
// cost-basis state.
func (l *Ledger) Reduce() State {
	state := NewState(l.currency)
	for _, r := range l.Records() {
		state = state.Apply(r)
	}
	return state
}
