// Package currencyservice manages business logic layer of multi-currency amounts.
package currencyservice

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

// RateTable is a validated set of rates against a single base currency.
type RateTable struct {
	base  string
	rates map[string]domain.CurrencyRate
	order []string
}

// NewRateTable validates rates and builds a RateTable.
//
// Exactly one rate must be the base with a rate of one, and every rate must
// be positive.
func NewRateTable(rates []domain.CurrencyRate) (*RateTable, error) {
	t := &RateTable{rates: make(map[string]domain.CurrencyRate, len(rates))}

	for _, r := range rates {
		r.Code = strings.ToUpper(r.Code)

		if !r.ExchangeRateToBase.IsPositive() {
			return nil, domain.ErrInvalidRate
		}

		if r.IsBase {
			if t.base != "" {
				return nil, domain.ErrMultipleBaseCurrencies
			}

			if !r.ExchangeRateToBase.Equal(decimal.NewFromInt(1)) {
				return nil, domain.ErrInvalidRate
			}

			t.base = r.Code
		}

		if _, ok := t.rates[r.Code]; !ok {
			t.order = append(t.order, r.Code)
		}

		t.rates[r.Code] = r
	}

	if t.base == "" {
		return nil, domain.ErrNoBaseCurrency
	}

	return t, nil
}

// Base returns the base currency code.
func (t *RateTable) Base() string {
	return t.base
}

// Rate returns the rate record of code.
func (t *RateTable) Rate(code string) (domain.CurrencyRate, error) {
	r, ok := t.rates[strings.ToUpper(code)]
	if !ok {
		return domain.CurrencyRate{}, domain.ErrInvalidCurrency
	}

	return r, nil
}

// Rates returns the rate records in their original order.
func (t *RateTable) Rates() []domain.CurrencyRate {
	out := make([]domain.CurrencyRate, 0, len(t.order))
	for _, code := range t.order {
		out = append(out, t.rates[code])
	}

	return out
}

// Convert converts amount from one currency to another through the base
// currency. The result is not rounded.
func Convert(amount decimal.Decimal, from, to string, table *RateTable) (decimal.Decimal, error) {
	fromRate, err := table.Rate(from)
	if err != nil {
		return decimal.Decimal{}, err
	}

	toRate, err := table.Rate(to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if fromRate.Code == toRate.Code {
		return amount, nil
	}

	return amount.Div(fromRate.ExchangeRateToBase).Mul(toRate.ExchangeRateToBase), nil
}
