package cartera

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the normalized direction of a ledger operation.
type Side int

const (
	// SideUnknown marks an operation token that maps to neither a buy nor a
	// sell (e.g. "Dividendo"). Such records never affect position state.
	SideUnknown Side = iota
	// SideBuy acquires units of a symbol.
	SideBuy
	// SideSell disposes of units of a symbol.
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide normalizes a free-text operation token into a Side.
//
// Broker exports carry the operation in free text ("Compra", "Venta", or
// English equivalents). Matching is case-insensitive and, like the exports
// themselves, tolerant of qualifiers around the token ("Compra parcial").
func ParseSide(token string) Side {
	t := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.Contains(t, "compra"), t == "buy":
		return SideBuy
	case strings.Contains(t, "venta"), t == "sell":
		return SideSell
	default:
		return SideUnknown
	}
}

// Record is one normalized ledger line.
//
// Price is the per-unit price already converted into the ledger's accounting
// currency at transaction time. NativePrice is the per-unit quote in the
// original currency, retained for display and last-seen valuation, never for
// the costing math.
type Record struct {
	Date        Date
	Symbol      string
	Operation   string // raw operation token as ingested
	Side        Side   // derived from Operation
	Quantity    Quantity
	Price       Money           // per unit, accounting currency
	NativePrice Money           // per unit, native currency
	FXRate      decimal.Decimal // native to accounting rate at transaction time
	Fees        Money           // optional; not part of the costing math
}

// NewRecord builds a Record and derives its Side from the operation token.
func NewRecord(on Date, symbol, operation string, quantity Quantity, price, nativePrice Money, fxRate decimal.Decimal, fees Money) Record {
	return Record{
		Date:        on,
		Symbol:      symbol,
		Operation:   operation,
		Side:        ParseSide(operation),
		Quantity:    quantity,
		Price:       price,
		NativePrice: nativePrice,
		FXRate:      fxRate,
		Fees:        fees,
	}
}

// Amount returns the record's gross amount in the accounting currency,
// quantity times per-unit price.
func (r Record) Amount() Money { return r.Price.Mul(r.Quantity) }

// Validate checks a record against the ledger's accounting currency.
func (r Record) Validate(accountingCurrency string) error {
	if r.Symbol == "" {
		return errors.New("symbol is missing")
	}
	if r.Date.IsZero() {
		return errors.New("date is missing")
	}
	if !r.Quantity.IsPositive() {
		return fmt.Errorf("quantity %s must be positive", r.Quantity)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("price %s must not be negative", r.Price)
	}
	if r.Fees.IsNegative() {
		return fmt.Errorf("fees %s must not be negative", r.Fees)
	}
	if c := r.Price.Currency(); c != "" && c != accountingCurrency {
		return fmt.Errorf("price currency %q differs from accounting currency %q", c, accountingCurrency)
	}
	return nil
}

// Equal reports whether two records carry the same data.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Symbol == o.Symbol &&
		r.Operation == o.Operation &&
		r.Quantity.Equal(o.Quantity) &&
		r.Price.Equal(o.Price) &&
		r.NativePrice.Equal(o.NativePrice) &&
		r.FXRate.Equal(o.FXRate) &&
		r.Fees.Equal(o.Fees)
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", r.Date, r.Operation, r.Quantity, r.Symbol, r.Price)
}

// MarshalJSON implements the json.Marshaler interface for Record.
// Keys are emitted in a stable, human-friendly order for the JSONL codec.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("symbol", r.Symbol)
	w.Append("operation", r.Operation)
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price.value)
	w.Optional("currency", r.Price.Currency())
	w.Optional("nativePrice", r.NativePrice.value)
	w.Optional("nativeCurrency", r.NativePrice.Currency())
	if !r.FXRate.IsZero() {
		w.Append("fxRate", r.FXRate)
	}
	if !r.Fees.IsZero() {
		w.Append("fees", r.Fees.value)
	}
	return w.MarshalJSON()
}
