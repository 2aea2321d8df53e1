package enums

import "fmt"

// Currency represents the monetary denominations the storefront sells in.
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

var validCurrencies = []Currency{
	CurrencyGBP,
	CurrencyUSD,
	CurrencyEUR,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// Symbol returns the display symbol for the currency. Unknown currencies
// render as euro; the storefront only prices in the three listed above.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyGBP:
		return "£"
	case CurrencyUSD:
		return "$"
	default:
		return "€"
	}
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
