// Package invoicerepo manages repository layer of open invoices.
package invoicerepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/dbpkg"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

// RepoPGS facilitates invoice repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns invoice RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listOpenQuery = `
SELECT
	id, customer_id, amount, issue_date, due_date
FROM invoices
WHERE tenant_id = $1 AND paid_at IS NULL
ORDER BY created_at, id
`

const listOpenByCustomerQuery = `
SELECT
	id, customer_id, amount, issue_date, due_date
FROM invoices
WHERE tenant_id = $1 AND customer_id = $2 AND paid_at IS NULL
ORDER BY created_at, id
`

// ListOpen returns all unpaid invoices of the tenant.
func (r *RepoPGS) ListOpen(ctx context.Context, tenantID string) ([]domain.Invoice, error) {
	return r.list(ctx, listOpenQuery, tenantID)
}

// ListOpenByCustomer returns unpaid invoices of one customer.
func (r *RepoPGS) ListOpenByCustomer(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error) {
	return r.list(ctx, listOpenByCustomerQuery, tenantID, customerID)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Invoice, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Invoice{}

	for rows.Next() {
		var (
			inv       domain.Invoice
			issueDate sql.NullTime
			dueDate   sql.NullTime
		)

		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &issueDate, &dueDate); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		// A NULL due date stays zero so aging reports it as missing.
		if issueDate.Valid {
			inv.IssueDate = issueDate.Time
		}

		if dueDate.Valid {
			inv.DueDate = dueDate.Time
		}

		items = append(items, inv)
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

const createQuery = `
INSERT INTO invoices (id, tenant_id, customer_id, amount, issue_date, due_date)
VALUES ($1, $2, $3, $4, $5, $6)
`

// Create stores an open invoice.
func (r *RepoPGS) Create(ctx context.Context, tenantID string, inv domain.Invoice) error {
	l := zerolog.Ctx(ctx)

	issueDate := sql.NullTime{Time: inv.IssueDate, Valid: !inv.IssueDate.IsZero()}
	dueDate := sql.NullTime{Time: inv.DueDate, Valid: !inv.DueDate.IsZero()}

	if _, err := r.db.ExecContext(ctx, createQuery, inv.ID, tenantID, inv.CustomerID, inv.Amount, issueDate, dueDate); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
