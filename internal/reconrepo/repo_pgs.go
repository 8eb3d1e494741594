// Package reconrepo manages repository layer of reconciliation transactions.
package reconrepo

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/dbpkg"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

// RepoPGS facilitates reconciliation repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns reconciliation RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listQuery = `
SELECT
	id, date, description, bank_amount, book_amount, matched
FROM reconciliation_transactions
WHERE tenant_id = $1
ORDER BY date, id
`

// List returns the tenant's reconciliation transactions.
func (r *RepoPGS) List(ctx context.Context, tenantID string) ([]domain.ReconTransaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, tenantID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ReconTransaction{}

	for rows.Next() {
		var tx domain.ReconTransaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Description, &tx.BankAmount, &tx.BookAmount, &tx.Matched); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, tx)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const toggleMatchedQuery = `
UPDATE reconciliation_transactions
SET matched = NOT matched, updated_at = now()
WHERE tenant_id = $1 AND id = $2
RETURNING matched
`

// ToggleMatched flips the matched flag of one transaction in a single statement
// and returns the new value.
func (r *RepoPGS) ToggleMatched(ctx context.Context, tenantID string, id int64) (bool, error) {
	l := zerolog.Ctx(ctx)

	var matched bool

	err := r.db.QueryRowContext(ctx, toggleMatchedQuery, tenantID, id).Scan(&matched)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Int64("id", id).Msg(domain.ErrTransactionNotFound.Error())
			return false, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return false, errorspkg.ErrInternal
	}

	return matched, nil
}

const matchEqualAmountsQuery = `
UPDATE reconciliation_transactions
SET matched = true, updated_at = now()
WHERE tenant_id = $1 AND NOT matched AND bank_amount = book_amount
RETURNING id
`

// MatchEqualAmounts marks every unmatched transaction whose bank and book
// amounts agree as matched and returns their ids in ascending order.
func (r *RepoPGS) MatchEqualAmounts(ctx context.Context, tenantID string) ([]int64, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, matchEqualAmountsQuery, tenantID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		ids = append(ids, id)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

const createQuery = `
INSERT INTO reconciliation_transactions (tenant_id, date, description, bank_amount, book_amount, matched)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

// Create stores a transaction and returns it with its id.
func (r *RepoPGS) Create(ctx context.Context, tenantID string, tx domain.ReconTransaction) (domain.ReconTransaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, tenantID, tx.Date, tx.Description, tx.BankAmount, tx.BookAmount, tx.Matched)

	if err := row.Scan(&tx.ID); err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			l.Error().Str("code", string(pqErr.Code)).Send()
		}

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}
