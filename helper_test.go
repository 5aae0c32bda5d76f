package cartera

import (
	"testing"

	"github.com/shopspring/decimal"
)

// Builders for test records, all in EUR with a unit FX rate.

func buy(t *testing.T, date, symbol string, quantity, price float64) Record {
	t.Helper()
	return rec(t, date, symbol, "Compra de valores", quantity, price)
}

func sell(t *testing.T, date, symbol string, quantity, price float64) Record {
	t.Helper()
	return rec(t, date, symbol, "Venta de valores", quantity, price)
}

func rec(t *testing.T, date, symbol, operation string, quantity, price float64) Record {
	t.Helper()
	return NewRecord(
		MustParseDate(date),
		symbol,
		operation,
		Q(quantity),
		M(price, "EUR"),
		M(price, "EUR"),
		decimal.NewFromInt(1),
		M(0, "EUR"),
	)
}

func mustLedger(t *testing.T, records ...Record) *Ledger {
	t.Helper()
	ledger, err := NewLedger("EUR")
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	if err := ledger.Append(records...); err != nil {
		t.Fatalf("Append: %v", err)
	}
	return ledger
}
