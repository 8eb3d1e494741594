// Package creditrepo manages repository layer of customer credit profiles.
package creditrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/dbpkg"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

// RepoPGS facilitates credit repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns credit RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getProfileQuery = `
SELECT
	customer_id, credit_limit, current_balance
FROM credit_profiles
WHERE tenant_id = $1 AND customer_id = $2
`

// GetProfile returns the credit profile of the customer.
func (r *RepoPGS) GetProfile(ctx context.Context, tenantID, customerID string) (domain.CreditProfile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getProfileQuery, tenantID, customerID)

	var p domain.CreditProfile

	err := row.Scan(
		&p.CustomerID,
		&p.CreditLimit,
		&p.CurrentBalance,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			l.Info().Err(err).Str("customer_id", customerID).Send()
			return p, domain.ErrCustomerNotFound
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const upsertProfileQuery = `
INSERT INTO credit_profiles (tenant_id, customer_id, credit_limit, current_balance)
VALUES ($1, $2, $3, $4)
ON CONFLICT (tenant_id, customer_id)
DO UPDATE SET credit_limit = EXCLUDED.credit_limit, current_balance = EXCLUDED.current_balance
RETURNING customer_id, credit_limit, current_balance
`

// Upsert stores the credit profile and returns it.
func (r *RepoPGS) Upsert(ctx context.Context, tenantID string, p domain.CreditProfile) (domain.CreditProfile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, upsertProfileQuery, tenantID, p.CustomerID, p.CreditLimit, p.CurrentBalance)

	var got domain.CreditProfile

	if err := row.Scan(&got.CustomerID, &got.CreditLimit, &got.CurrentBalance); err != nil {
		l.Error().Err(err).Send()
		return got, errorspkg.ErrInternal
	}

	return got, nil
}
