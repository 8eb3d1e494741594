// Package customerservice builds the customer center statement.
package customerservice

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-petr/pet-books/internal/domain"
)

// CreditService provides credit evaluation needed by customer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package customerservice
type CreditService interface {
	EvaluateCustomer(ctx context.Context, tenantID, customerID string) (domain.CreditEvaluation, error)
}

// AgingService provides customer aging needed by customer service layer.
type AgingService interface {
	CustomerRow(ctx context.Context, tenantID, customerID string, asOf time.Time) (domain.AgingRow, error)
}

// Service facilitates customer statement logic.
type Service struct {
	credit CreditService
	aging  AgingService
}

// New returns customer service struct.
func New(cs CreditService, as AgingService) *Service {
	return &Service{
		credit: cs,
		aging:  as,
	}
}

// Statement loads the credit evaluation and the aging row of a customer concurrently.
func (s *Service) Statement(ctx context.Context, tenantID, customerID string, asOf time.Time) (domain.CustomerStatement, error) {
	var (
		credit domain.CreditEvaluation
		aging  domain.AgingRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		credit, err = s.credit.EvaluateCustomer(gctx, tenantID, customerID)
		return err
	})

	g.Go(func() error {
		var err error
		aging, err = s.aging.CustomerRow(gctx, tenantID, customerID, asOf)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.CustomerStatement{}, err
	}

	y, m, d := asOf.Date()

	return domain.CustomerStatement{
		CustomerID: customerID,
		AsOf:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Credit:     credit,
		Aging:      aging,
	}, nil
}
