package cartera

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordLine is the flat JSONL form of a Record. Money fields travel as a
// decimal amount plus a currency code.
type recordLine struct {
	Date           Date            `json:"date"`
	Symbol         string          `json:"symbol"`
	Operation      string          `json:"operation"`
	Quantity       Quantity        `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	NativePrice    decimal.Decimal `json:"nativePrice"`
	NativeCurrency string          `json:"nativeCurrency"`
	FXRate         decimal.Decimal `json:"fxRate"`
	Fees           decimal.Decimal `json:"fees"`
}

func (t recordLine) record() Record {
	return NewRecord(
		t.Date,
		t.Symbol,
		t.Operation,
		t.Quantity,
		M(t.Price, t.Currency),
		M(t.NativePrice, t.NativeCurrency),
		t.FXRate,
		M(t.Fees, t.Currency),
	)
}

// DecodeLedger decodes records from a stream of JSONL data, one record per
// line, and returns a sorted Ledger in the given accounting currency.
// Blank lines are skipped; a malformed line fails the whole decode with the
// offending content.
func DecodeLedger(r io.Reader, accountingCurrency string) (*Ledger, error) {
	ledger, err := NewLedger(accountingCurrency)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var line recordLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode record line %q: %w", string(lineBytes), err)
		}
		if err := ledger.Append(line.record()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeRecord writes a single record as one JSONL line.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not encode record %v: %w", r, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole ledger in its canonical JSONL form,
// chronologically sorted.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, r := range l.Records() {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
