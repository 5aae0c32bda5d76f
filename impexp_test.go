package cartera

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const semicolonCSV = `Fecha;Simbolo;Operacion;Cantidad;Precio_Operacion;Divisa;EURO_DIVASA;EURO_DIVISA_BCE;Precio_Compra_EUR;Cotizacion;Comision
15/01/2025;ACME;Compra de valores;10;110,5;USD;ignored;0,905;100;112,3;2,5
01/02/2025;ACME;Venta de valores;5;120;USD;ignored;0,91;109,2;121,7;2,5
`

func TestImportCSVSemicolon(t *testing.T) {
	ledger, err := ImportCSV(strings.NewReader(semicolonCSV), "EUR")
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("records = %d, want 2", ledger.Len())
	}

	var first Record
	for i, r := range ledger.Records() {
		if i == 0 {
			first = r
		}
	}
	if first.Date != MustParseDate("2025-01-15") {
		t.Errorf("date = %v, want 2025-01-15 (day-first)", first.Date)
	}
	if first.Side != SideBuy {
		t.Errorf("side = %v, want buy", first.Side)
	}
	if !first.Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", first.Quantity)
	}
	// The base-currency price drives the costing math.
	if want := M(100, "EUR"); !first.Price.Equal(want) {
		t.Errorf("price = %s, want %s", first.Price, want)
	}
	// The live quote column is preferred for the native price.
	if want := M(decimal.NewFromFloat(112.3), "USD"); !first.NativePrice.Equal(want) {
		t.Errorf("native price = %s, want %s", first.NativePrice, want)
	}
	if !first.FXRate.Equal(decimal.NewFromFloat(0.905)) {
		t.Errorf("fx rate = %s, want 0.905", first.FXRate)
	}
	if want := M(decimal.NewFromFloat(2.5), "EUR"); !first.Fees.Equal(want) {
		t.Errorf("fees = %s, want %s", first.Fees, want)
	}
}

func TestImportCSVComma(t *testing.T) {
	csv := `Fecha,Simbolo,Operacion,Cantidad,Precio_Operacion,Divisa,EURO_DIVISA_BCE,Precio_Compra_EUR,Cotizacion
2025-01-15,ACME,Compra de valores,10,100,EUR,1,100,100
`
	ledger, err := ImportCSV(strings.NewReader(csv), "EUR")
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("records = %d, want 1", ledger.Len())
	}
}

func TestImportCSVNoQuoteColumnFallsBack(t *testing.T) {
	// Older exports have no Cotizacion column; the trade price stands in.
	csv := `Fecha;Simbolo;Operacion;Cantidad;Precio_Operacion;Divisa;Precio_Compra_EUR
15/01/2025;ACME;Compra de valores;10;112,3;USD;100
`
	ledger, err := ImportCSV(strings.NewReader(csv), "EUR")
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	var first Record
	for _, r := range ledger.Records() {
		first = r
	}
	if want := M(decimal.NewFromFloat(112.3), "USD"); !first.NativePrice.Equal(want) {
		t.Errorf("native price = %s, want %s", first.NativePrice, want)
	}
	// A missing fx column defaults to 1.
	if !first.FXRate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("fx rate = %s, want 1", first.FXRate)
	}
}

func TestImportCSVSortsByDate(t *testing.T) {
	csv := `Fecha;Simbolo;Operacion;Cantidad;Precio_Operacion;Divisa;Precio_Compra_EUR
01/03/2025;ACME;Compra de valores;1;10;EUR;10
15/01/2025;ACME;Compra de valores;1;10;EUR;10
`
	ledger, err := ImportCSV(strings.NewReader(csv), "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if got := ledger.OldestDate(); got != MustParseDate("2025-01-15") {
		t.Errorf("oldest = %v, want 2025-01-15", got)
	}
}

func TestImportCSVMissingColumn(t *testing.T) {
	csv := `Fecha;Simbolo;Cantidad
15/01/2025;ACME;10
`
	if _, err := ImportCSV(strings.NewReader(csv), "EUR"); err == nil {
		t.Fatal("want an error for a missing required column")
	}
}

func TestImportCSVBadNumberReportsLine(t *testing.T) {
	csv := `Fecha;Simbolo;Operacion;Cantidad;Precio_Operacion;Divisa;Precio_Compra_EUR
15/01/2025;ACME;Compra de valores;diez;10;EUR;10
`
	_, err := ImportCSV(strings.NewReader(csv), "EUR")
	if err == nil {
		t.Fatal("want an error for a non-numeric quantity")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestSniffSeparator(t *testing.T) {
	tests := []struct {
		header string
		want   rune
	}{
		{"a;b;c", ';'},
		{"a,b,c", ','},
		{"a;b,c;d", ';'}, // semicolon dominates on ties and majorities
		{"abc", ','},
	}
	for _, tt := range tests {
		if got := sniffSeparator(tt.header); got != tt.want {
			t.Errorf("sniffSeparator(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestParseDecimalField(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "100", want: "100"},
		{in: "110,5", want: "110.5"},
		{in: " 0,905 ", want: "0.905"},
		{in: "1.25", want: "1.25"},
		{in: "", wantErr: true},
		{in: "diez", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseDecimalField(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDecimalField(%q) = %s, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDecimalField(%q): %v", tt.in, err)
			continue
		}
		if want, _ := decimal.NewFromString(tt.want); !got.Equal(want) {
			t.Errorf("parseDecimalField(%q) = %s, want %s", tt.in, got, want)
		}
	}
}
