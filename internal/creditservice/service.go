// Package creditservice manages business logic layer of customer credit.
package creditservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Evaluate derives available credit and limit status of the profile.
//
// A negative credit limit is accepted and yields a negative available credit.
func Evaluate(p domain.CreditProfile) domain.CreditEvaluation {
	e := domain.CreditEvaluation{
		CustomerID:      p.CustomerID,
		CreditLimit:     p.CreditLimit,
		CurrentBalance:  p.CurrentBalance,
		AvailableCredit: p.CreditLimit.Sub(p.CurrentBalance),
		WithinLimit:     p.CurrentBalance.LessThanOrEqual(p.CreditLimit),
		UtilizationPct:  decimal.Zero,
	}

	if p.CreditLimit.IsPositive() {
		e.UtilizationPct = p.CurrentBalance.Div(p.CreditLimit).Mul(hundred).Round(2)
	}

	return e
}

// Repo provides data access layer interface needed by credit service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package creditservice
type Repo interface {
	GetProfile(ctx context.Context, tenantID, customerID string) (domain.CreditProfile, error)
}

// Service facilitates credit service layer logic.
type Service struct {
	repo Repo
}

// New returns credit service struct to manage credit bussines logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// EvaluateCustomer loads the customer's credit profile and evaluates it.
func (s *Service) EvaluateCustomer(ctx context.Context, tenantID, customerID string) (domain.CreditEvaluation, error) {
	l := zerolog.Ctx(ctx)

	profile, err := s.repo.GetProfile(ctx, tenantID, customerID)
	if err != nil {
		return domain.CreditEvaluation{}, err
	}

	e := Evaluate(profile)
	if !e.WithinLimit {
		l.Info().
			Str("customer_id", customerID).
			Str("available_credit", e.AvailableCredit.String()).
			Msg("customer over credit limit")
	}

	return e, nil
}
