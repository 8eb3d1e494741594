package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCurrency indicates a currency code absent from the rate table.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrNoBaseCurrency indicates a rate table without a base currency.
	ErrNoBaseCurrency = errors.New("rate table has no base currency")
	// ErrMultipleBaseCurrencies indicates a rate table with more than one base currency.
	ErrMultipleBaseCurrencies = errors.New("rate table has more than one base currency")
	// ErrInvalidRate indicates a non-positive rate or a base rate other than one.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// CurrencyRate holds the rate of a currency against the base currency.
type CurrencyRate struct {
	Code               string          `json:"code"`
	Symbol             string          `json:"symbol"`
	ExchangeRateToBase decimal.Decimal `json:"exchange_rate_to_base"`
	IsBase             bool            `json:"is_base"`
}

// Conversion is the result of converting an amount between currencies.
type Conversion struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}
