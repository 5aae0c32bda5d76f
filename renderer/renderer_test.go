package renderer

import (
	"strings"
	"testing"

	"github.com/folionet/cartera"
	"github.com/shopspring/decimal"
)

func testLedger(t *testing.T) *cartera.Ledger {
	t.Helper()
	ledger, err := cartera.NewLedger("EUR")
	if err != nil {
		t.Fatal(err)
	}
	err = ledger.Append(
		record(t, "2025-01-01", "ACME", "Compra de valores", 10, 100),
		record(t, "2025-02-01", "ACME", "Compra de valores", 10, 120),
		record(t, "2025-03-01", "ACME", "Venta de valores", 5, 150),
	)
	if err != nil {
		t.Fatal(err)
	}
	return ledger
}

func record(t *testing.T, date, symbol, operation string, quantity, price float64) cartera.Record {
	t.Helper()
	return cartera.NewRecord(
		cartera.MustParseDate(date),
		symbol,
		operation,
		cartera.Q(quantity),
		cartera.M(price, "EUR"),
		cartera.M(price, "EUR"),
		decimal.NewFromInt(1),
		cartera.M(0, "EUR"),
	)
}

func testSummary(t *testing.T) *cartera.Summary {
	t.Helper()
	s, err := cartera.NewSummary(testLedger(t), cartera.MustParseDate("2025-08-27"), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(testSummary(t))

	for _, want := range []string{
		"# Portfolio Summary on 2025-08-27",
		"| Market Value |",
		"| Invested |",
		"| Unrealized P&L |",
		"| Realized P&L |",
		"| Annualized Return (XIRR) |",
		"## Holdings",
		"| ACME |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown is missing %q:\n%s", want, md)
		}
	}
	// A clean fold renders no warnings section.
	if strings.Contains(md, "## Warnings") {
		t.Errorf("unexpected warnings section:\n%s", md)
	}
}

func TestSummaryMarkdownWarnings(t *testing.T) {
	ledger := testLedger(t)
	err := ledger.Append(
		record(t, "2025-04-01", "ACME", "Dividendo", 1, 5),
		record(t, "2025-05-01", "GLOBEX", "Venta de valores", 3, 10),
	)
	if err != nil {
		t.Fatal(err)
	}
	s, err := cartera.NewSummary(ledger, cartera.MustParseDate("2025-08-27"), nil)
	if err != nil {
		t.Fatal(err)
	}

	md := SummaryMarkdown(s)
	for _, want := range []string{
		"## Warnings",
		"| dividendo | 1 |",
		"1 sell row(s) exceeded the held quantity and were clamped.",
		"5 rows processed in total.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown is missing %q:\n%s", want, md)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	md := HoldingsMarkdown(testSummary(t))
	if !strings.Contains(md, "# Holdings on 2025-08-27") || !strings.Contains(md, "| ACME |") {
		t.Errorf("unexpected holdings markdown:\n%s", md)
	}

	empty, err := cartera.NewLedger("EUR")
	if err != nil {
		t.Fatal(err)
	}
	s, err := cartera.NewSummary(empty, cartera.MustParseDate("2025-08-27"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if md := HoldingsMarkdown(s); !strings.Contains(md, "No open positions.") {
		t.Errorf("empty holdings markdown should say so:\n%s", md)
	}
}

func TestLogMarkdown(t *testing.T) {
	md := LogMarkdown(testLedger(t))

	if !strings.Contains(md, "# Transaction Log (EUR)") {
		t.Errorf("missing title:\n%s", md)
	}
	// One table row per record.
	if got := strings.Count(md, "| 2025-"); got != 3 {
		t.Errorf("log rows = %d, want 3:\n%s", got, md)
	}
	if !strings.Contains(md, "Realized P&L to date:") {
		t.Errorf("missing realized footer:\n%s", md)
	}

	empty, err := cartera.NewLedger("EUR")
	if err != nil {
		t.Fatal(err)
	}
	if md := LogMarkdown(empty); !strings.Contains(md, "The ledger is empty.") {
		t.Errorf("empty log markdown should say so:\n%s", md)
	}
}
