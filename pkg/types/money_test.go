package types

import (
	"testing"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		amount   Money
		currency enums.Currency
		want     string
	}{
		{amount: 1700, currency: enums.CurrencyGBP, want: "£17.00"},
		{amount: 850, currency: enums.CurrencyUSD, want: "$8.50"},
		{amount: 5, currency: enums.CurrencyEUR, want: "€0.05"},
		{amount: 0, currency: enums.CurrencyGBP, want: "£0.00"},
		{amount: 129900, currency: enums.Currency("CHF"), want: "€1299.00"},
	}
	for _, tt := range tests {
		if got := tt.amount.Format(tt.currency); got != tt.want {
			t.Fatalf("Format(%d, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestMoneyPercentOf(t *testing.T) {
	if got := Money(150).PercentOf(1000); got != 15 {
		t.Fatalf("expected 15%%, got %d", got)
	}
	if got := Money(1).PercentOf(3); got != 33 {
		t.Fatalf("expected 33%%, got %d", got)
	}
	if got := Money(2).PercentOf(3); got != 67 {
		t.Fatalf("expected rounded 67%%, got %d", got)
	}
	if got := Money(100).PercentOf(0); got != 0 {
		t.Fatalf("zero base must yield zero, got %d", got)
	}
}

func TestMoneyClampZero(t *testing.T) {
	if got := Money(-250).ClampZero(); got != 0 {
		t.Fatalf("expected clamp to zero, got %d", got)
	}
	if got := Money(250).ClampZero(); got != 250 {
		t.Fatalf("positive amount must pass through, got %d", got)
	}
}
