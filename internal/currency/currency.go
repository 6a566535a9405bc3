// Package currency provides the popular-currency catalog and an offline rate
// table used when the service's rate endpoints are unreachable.
package currency

import (
	"github.com/shopspring/decimal"

	"tripgpt/internal/api"
)

// Currency is one catalog entry.
type Currency struct {
	Code    string
	Name    string
	Country string
}

// Popular is the catalog offered in the converter widget.
var Popular = []Currency{
	{"USD", "US Dollar", "United States"},
	{"EUR", "Euro", "European Union"},
	{"GBP", "British Pound", "United Kingdom"},
	{"JPY", "Japanese Yen", "Japan"},
	{"CAD", "Canadian Dollar", "Canada"},
	{"AUD", "Australian Dollar", "Australia"},
	{"CHF", "Swiss Franc", "Switzerland"},
	{"CNY", "Chinese Yuan", "China"},
	{"INR", "Indian Rupee", "India"},
	{"SGD", "Singapore Dollar", "Singapore"},
}

// usdRates anchors the offline table: units of each currency per one USD.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(1),
	"EUR": decimal.NewFromFloat(0.85),
	"GBP": decimal.NewFromFloat(0.73),
	"JPY": decimal.NewFromFloat(110.5),
	"CAD": decimal.NewFromFloat(1.25),
	"AUD": decimal.NewFromFloat(1.35),
	"CHF": decimal.NewFromFloat(0.92),
	"CNY": decimal.NewFromFloat(6.45),
	"INR": decimal.NewFromFloat(74.5),
	"SGD": decimal.NewFromFloat(1.34),
	"NZD": decimal.NewFromFloat(1.45),
	"KRW": decimal.NewFromFloat(1180),
}

// FallbackRates builds an offline rate table for a base currency, derived
// from the USD anchors. An unknown base is treated as pegged to USD.
func FallbackRates(base string) *api.RateTable {
	baseValue, ok := usdRates[base]
	if !ok {
		baseValue = decimal.NewFromFloat(1)
	}
	rates := make(map[string]decimal.Decimal, len(usdRates)-1)
	for code, value := range usdRates {
		if code == base {
			continue
		}
		rates[code] = value.Div(baseValue).Round(4)
	}
	return &api.RateTable{BaseCurrency: base, Rates: rates}
}

// FallbackRate returns the offline rate between two currencies, or one when
// either side is unknown.
func FallbackRate(from, to string) decimal.Decimal {
	fromValue, fromOK := usdRates[from]
	toValue, toOK := usdRates[to]
	if !fromOK || !toOK {
		return decimal.NewFromFloat(1)
	}
	return toValue.Div(fromValue).Round(4)
}

// Convert applies a rate table to an amount. The zero value is returned when
// the table has no rate for the target currency.
func Convert(table *api.RateTable, amount decimal.Decimal, to string) (decimal.Decimal, bool) {
	rate, ok := table.Rates[to]
	if !ok {
		return decimal.Zero, false
	}
	return amount.Mul(rate).Round(2), true
}
