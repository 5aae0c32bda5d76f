package cartera

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger is a chronological list of transaction records valued in a single,
// explicit accounting currency.
//
// In a Ledger records are always in non-decreasing date order; records that
// share a date keep their input order.
type Ledger struct {
	currency string // accounting currency, e.g. "EUR"
	records  []Record
}

// NewLedger creates an empty ledger for the given accounting currency.
func NewLedger(accountingCurrency string) (*Ledger, error) {
	if accountingCurrency == "" {
		return nil, fmt.Errorf("accounting currency is not set")
	}
	return &Ledger{currency: accountingCurrency}, nil
}

// Currency returns the ledger's accounting currency.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Append validates records, appends them to the ledger and maintains the
// chronological order of records.
func (l *Ledger) Append(recs ...Record) error {
	for _, r := range recs {
		if err := r.Validate(l.currency); err != nil {
			return fmt.Errorf("invalid record %v: %w", r, err)
		}
	}
	l.records = append(l.records, recs...)
	l.stableSort()
	return nil
}

// stableSort sorts the ledger by record date. The sort is stable, meaning
// records on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}

// Records returns an iterator over the records in chronological order.
// With no filter every record is yielded; with filters, a record is yielded
// when any filter accepts it.
func (l *Ledger) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(r) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters records by symbol.
func BySymbol(symbol string) func(Record) bool {
	return func(r Record) bool { return r.Symbol == symbol }
}

// BySide returns a predicate that filters records by normalized side.
func BySide(side Side) func(Record) bool {
	return func(r Record) bool { return r.Side == side }
}

// AllSymbols iterates over the distinct symbols in the ledger, sorted.
func (l *Ledger) AllSymbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		symbols := make([]string, 0)
		for _, r := range l.records {
			if _, ok := visited[r.Symbol]; !ok {
				visited[r.Symbol] = struct{}{}
				symbols = append(symbols, r.Symbol)
			}
		}
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// OldestDate returns the date of the earliest record in the ledger,
// or the zero Date if the ledger is empty.
func (l *Ledger) OldestDate() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[0].Date
}

// NewestDate returns the date of the latest record in the ledger,
// or the zero Date if the ledger is empty.
func (l *Ledger) NewestDate() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[len(l.records)-1].Date
}
