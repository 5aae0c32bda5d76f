package cartera

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		token string
		want  Side
	}{
		{"Compra de valores", SideBuy},
		{"COMPRA", SideBuy},
		{"compra parcial", SideBuy},
		{"buy", SideBuy},
		{"  Buy  ", SideBuy},
		{"Venta de valores", SideSell},
		{"VENTA", SideSell},
		{"sell", SideSell},
		{"Dividendo", SideUnknown},
		{"Traspaso externo", SideUnknown},
		{"buyback", SideUnknown}, // english tokens match exactly, not by substring
		{"", SideUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := ParseSide(tt.token); got != tt.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestNewRecordDerivesSide(t *testing.T) {
	r := buy(t, "2025-01-15", "ACME", 10, 100)
	if r.Side != SideBuy {
		t.Errorf("Side = %v, want buy", r.Side)
	}
	if got := sell(t, "2025-01-15", "ACME", 10, 100).Side; got != SideSell {
		t.Errorf("Side = %v, want sell", got)
	}
}

func TestRecordAmount(t *testing.T) {
	r := buy(t, "2025-01-15", "ACME", 10, 100.5)
	if want := M(1005, "EUR"); !r.Amount().Equal(want) {
		t.Errorf("Amount = %s, want %s", r.Amount(), want)
	}
}

func TestRecordValidate(t *testing.T) {
	valid := buy(t, "2025-01-15", "ACME", 10, 100)

	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Record) {}},
		{name: "missing symbol", mutate: func(r *Record) { r.Symbol = "" }, wantErr: true},
		{name: "missing date", mutate: func(r *Record) { r.Date = Date{} }, wantErr: true},
		{name: "zero quantity", mutate: func(r *Record) { r.Quantity = Q(0) }, wantErr: true},
		{name: "negative quantity", mutate: func(r *Record) { r.Quantity = Q(-1) }, wantErr: true},
		{name: "negative price", mutate: func(r *Record) { r.Price = M(-1, "EUR") }, wantErr: true},
		{name: "negative fees", mutate: func(r *Record) { r.Fees = M(-1, "EUR") }, wantErr: true},
		{name: "wrong currency", mutate: func(r *Record) { r.Price = M(100, "USD") }, wantErr: true},
		{name: "unknown operation is valid", mutate: func(r *Record) { r.Operation = "Dividendo"; r.Side = SideUnknown }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate("EUR")
			if tt.wantErr && err == nil {
				t.Error("want error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("want no error, got %v", err)
			}
		})
	}
}

func TestRecordEqual(t *testing.T) {
	a := buy(t, "2025-01-15", "ACME", 10, 100)
	b := buy(t, "2025-01-15", "ACME", 10, 100)
	if !a.Equal(b) {
		t.Error("identical records should be equal")
	}
	b.FXRate = decimal.NewFromFloat(0.9)
	if a.Equal(b) {
		t.Error("records with different fx rates should not be equal")
	}
}
