package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// CurrencyRates fetches the rate table for a base currency. Public endpoint.
func (c *Client) CurrencyRates(ctx context.Context, base string) (*RateTable, error) {
	table := &RateTable{}
	if err := c.do(ctx, http.MethodGet, "/currency/rates/"+base, nil, table, false); err != nil {
		return nil, err
	}
	return table, nil
}

// ConvertCurrency converts an amount between two currencies. Public endpoint.
func (c *Client) ConvertCurrency(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	request := &ConvertRequest{Amount: amount, FromCurrency: from, ToCurrency: to}
	response := &ConvertResponse{}
	if err := c.do(ctx, http.MethodPost, "/currency/convert", request, response, false); err != nil {
		return decimal.Zero, err
	}
	return response.ConvertedAmount, nil
}
