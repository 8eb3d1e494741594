// Package currencyrepo manages repository layer of currency rate tables.
package currencyrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/dbpkg"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

// RepoPGS facilitates currency repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns currency RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listRatesQuery = `
SELECT
	code, symbol, exchange_rate_to_base, is_base
FROM currency_rates
WHERE tenant_id = $1
ORDER BY position, code
`

// ListRates returns the tenant's rate table in display order.
func (r *RepoPGS) ListRates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listRatesQuery, tenantID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}

	for rows.Next() {
		var c domain.CurrencyRate
		if err := rows.Scan(&c.Code, &c.Symbol, &c.ExchangeRateToBase, &c.IsBase); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		rates = append(rates, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return rates, nil
}

const putRateQuery = `
INSERT INTO currency_rates (tenant_id, code, symbol, exchange_rate_to_base, is_base, position)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (tenant_id, code)
DO UPDATE SET symbol = EXCLUDED.symbol,
	exchange_rate_to_base = EXCLUDED.exchange_rate_to_base,
	is_base = EXCLUDED.is_base,
	position = EXCLUDED.position
`

// PutRate stores a rate at the given display position.
func (r *RepoPGS) PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, putRateQuery, tenantID, c.Code, c.Symbol, c.ExchangeRateToBase, c.IsBase, position)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
