package cartera

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quote snapshot documents are JSON feeds of the shape
//
//	{
//	    "generated": "2025-08-27",
//	    "quotes": [
//	        {"symbol": "AAPL", "price": 231.5, "currency": "USD", "fx": 0.9208},
//	        {"symbol": "SAN", "price": "4,52", "currency": "EUR"}
//	    ]
//	}
//
// Prices occasionally come back as strings with a decimal comma, depending
// on the locale of whatever produced the feed.

// DecodeQuotes extracts a Quotes map from a snapshot JSON document.
// Symbols without a currency are assumed to already quote in the accounting
// currency; a missing fx defaults to 1.
func DecodeQuotes(r io.Reader, accountingCurrency string) (Quotes, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode quote snapshot: %w", err)
	}
	return extractQuotes(jobj, accountingCurrency)
}

// FetchQuotes retrieves a quote snapshot from an HTTP endpoint, through the
// daily disk cache.
func FetchQuotes(addr string, accountingCurrency string) (Quotes, error) {
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch quote snapshot %q: %w", addr, err)
	}
	return extractQuotes(jobj, accountingCurrency)
}

func extractQuotes(jobj any, accountingCurrency string) (Quotes, error) {
	const path = "$.quotes[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("quote snapshot has no %q entries: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of one
	// answer, or a single answer, accept both.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	quotes := make(Quotes, len(jlist))
	for i, entry := range jlist {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("quote entry %d is not an object", i)
		}
		symbol, _ := m["symbol"].(string)
		if symbol == "" {
			return nil, fmt.Errorf("quote entry %d has no symbol", i)
		}

		price, err := jsonNumber(m["price"])
		if err != nil {
			return nil, fmt.Errorf("quote %q: price: %w", symbol, err)
		}

		currency, _ := m["currency"].(string)
		if currency == "" {
			currency = accountingCurrency
		}

		fx := decimal.NewFromInt(1)
		if raw, ok := m["fx"]; ok {
			if fx, err = jsonNumber(raw); err != nil {
				return nil, fmt.Errorf("quote %q: fx: %w", symbol, err)
			}
		}

		quotes[symbol] = Quote{Symbol: symbol, Price: M(price, currency), FXRate: fx}
	}
	return quotes, nil
}

// jsonNumber reads a numeric feed value that may be a JSON number or a
// string, possibly with a decimal comma.
func jsonNumber(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid number %q", t)
		}
		return decimal.NewFromString(s)
	case nil:
		return decimal.Decimal{}, fmt.Errorf("missing value")
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported value %v", v)
	}
}
