package cartera

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Broker CSV column headers. The export is Spanish; headers are matched
// after trimming, case-sensitively, as the broker emits them.
const (
	colDate        = "Fecha"
	colSymbol      = "Simbolo"
	colOperation   = "Operacion"
	colQuantity    = "Cantidad"
	colTradePrice  = "Precio_Operacion"
	colCurrency    = "Divisa"
	colFXRate      = "EURO_DIVISA_BCE"
	colPriceInBase = "Precio_Compra_EUR"
	colQuote       = "Cotizacion"
	colFees        = "Comision" // optional
)

// ImportCSV reads a broker CSV export and returns a sorted Ledger in the
// given accounting currency.
//
// The dialect is sniffed from the header line (';' then ','), dates are
// day-first (DD/MM/YYYY, ISO accepted too), and numeric fields tolerate a
// decimal comma. A malformed row aborts the import with its line number.
func ImportCSV(r io.Reader, accountingCurrency string) (*Ledger, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	sep := sniffSeparator(header)
	cr := csv.NewReader(strings.NewReader(header))
	cr.Comma = sep
	headRow, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not parse CSV header: %w", err)
	}

	index := make(map[string]int, len(headRow))
	for i, name := range headRow {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colSymbol, colOperation, colQuantity, colPriceInBase} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	ledger, err := NewLedger(accountingCurrency)
	if err != nil {
		return nil, err
	}

	body := csv.NewReader(br)
	body.Comma = sep
	body.FieldsPerRecord = len(headRow)
	lineNo := 1
	for {
		row, err := body.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", lineNo, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		on, err := ParseDate(field(colDate))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", lineNo, err)
		}
		quantity, err := parseDecimalField(field(colQuantity))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: column %q: %w", lineNo, colQuantity, err)
		}
		price, err := parseDecimalField(field(colPriceInBase))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: column %q: %w", lineNo, colPriceInBase, err)
		}

		// The live quote column carries the symbol's latest native price;
		// the trade price is the fallback for older exports without it.
		quoteField := field(colQuote)
		if quoteField == "" {
			quoteField = field(colTradePrice)
		}
		nativePrice, err := parseDecimalField(quoteField)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: column %q: %w", lineNo, colQuote, err)
		}

		fxRate := decimal.NewFromInt(1)
		if s := field(colFXRate); s != "" {
			if fxRate, err = parseDecimalField(s); err != nil {
				return nil, fmt.Errorf("CSV line %d: column %q: %w", lineNo, colFXRate, err)
			}
		}

		fees := decimal.Zero
		if s := field(colFees); s != "" {
			if fees, err = parseDecimalField(s); err != nil {
				return nil, fmt.Errorf("CSV line %d: column %q: %w", lineNo, colFees, err)
			}
		}

		nativeCurrency := field(colCurrency)
		if nativeCurrency == "" {
			nativeCurrency = accountingCurrency
		}

		rec := NewRecord(
			on,
			field(colSymbol),
			field(colOperation),
			Q(quantity),
			M(price, accountingCurrency),
			M(nativePrice, nativeCurrency),
			fxRate,
			M(fees, accountingCurrency),
		)
		if err := ledger.Append(rec); err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", lineNo, err)
		}
	}
	return ledger, nil
}

// sniffSeparator picks the column separator from the header line: the broker
// ships ';' by default, some locales re-export with ','.
func sniffSeparator(header string) rune {
	if strings.Count(header, ";") >= strings.Count(header, ",") && strings.Contains(header, ";") {
		return ';'
	}
	return ','
}

// parseDecimalField parses a numeric CSV field, accepting either '.' or ','
// as the decimal separator.
func parseDecimalField(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty numeric field")
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}
