package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

// Money is an amount in minor units (pence/cents) of some currency. Amounts
// stay integral through every calculation; formatting is display-only.
type Money int64

// Format renders the amount with the currency's symbol and two decimal
// places, e.g. Money(1700).Format(enums.CurrencyGBP) == "£17.00".
func (m Money) Format(currency enums.Currency) string {
	major := decimal.New(int64(m), -2)
	return fmt.Sprintf("%s%s", currency.Symbol(), major.StringFixed(2))
}

// Mul scales the amount by a whole quantity.
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}

// ClampZero floors negative amounts at zero.
func (m Money) ClampZero() Money {
	if m < 0 {
		return 0
	}
	return m
}

// PercentOf returns the rounded percentage this amount represents of base,
// or zero when base is not positive.
func (m Money) PercentOf(base Money) int {
	if base <= 0 {
		return 0
	}
	pct := decimal.New(int64(m), 0).
		Div(decimal.New(int64(base), 0)).
		Mul(decimal.New(100, 0))
	return int(pct.Round(0).IntPart())
}
