package domain

// Currency codes accepted for price display.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyXOF = "XOF"
)

// ExchangeRates maps a display currency to its EUR multiplier. Tour prices
// are stored in EUR and converted for presentation only.
var ExchangeRates = map[string]float64{
	CurrencyEUR: 1,
	CurrencyUSD: 1.08,
	CurrencyXOF: 655.957,
}

// ValidCurrency reports whether c is a supported display currency.
func ValidCurrency(c string) bool {
	_, ok := ExchangeRates[c]
	return ok
}

// Themes accepted for the UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether t is a supported theme.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}
