package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgpt/internal/api"
)

func TestFallbackRatesDerivedFromAnchors(t *testing.T) {
	table := FallbackRates("USD")
	assert.Equal(t, "USD", table.BaseCurrency)
	assert.NotContains(t, table.Rates, "USD")
	assert.Equal(t, "0.85", table.Rates["EUR"].String())
	assert.Equal(t, "110.5", table.Rates["JPY"].String())
}

func TestFallbackRatesNonUSDBase(t *testing.T) {
	table := FallbackRates("EUR")
	// 1 EUR in USD: 1 / 0.85, rounded to 4 places.
	assert.Equal(t, "1.1765", table.Rates["USD"].String())
}

func TestFallbackRatesUnknownBasePegsToUSD(t *testing.T) {
	table := FallbackRates("XYZ")
	assert.Equal(t, "0.85", table.Rates["EUR"].String())
}

func TestFallbackRate(t *testing.T) {
	assert.Equal(t, "0.85", FallbackRate("USD", "EUR").String())
	assert.Equal(t, "1", FallbackRate("USD", "XYZ").String())
}

func TestConvert(t *testing.T) {
	table := &api.RateTable{
		BaseCurrency: "USD",
		Rates:        map[string]decimal.Decimal{"INR": decimal.NewFromFloat(74.5)},
	}

	converted, ok := Convert(table, decimal.NewFromInt(10), "INR")
	require.True(t, ok)
	assert.Equal(t, "745", converted.String())

	_, ok = Convert(table, decimal.NewFromInt(10), "GBP")
	assert.False(t, ok)
}

func TestPopularCatalog(t *testing.T) {
	require.Len(t, Popular, 10)
	assert.Equal(t, "USD", Popular[0].Code)
	for _, entry := range Popular {
		assert.Contains(t, usdRates, entry.Code)
	}
}
