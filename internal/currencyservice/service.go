package currencyservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

// Repo provides data access layer interface needed by currency service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package currencyservice
type Repo interface {
	ListRates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error)
	PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error
}

// Service facilitates currency service layer logic.
type Service struct {
	repo      Repo
	formatter Formatter
}

// New returns currency service struct to manage currency bussines logic.
func New(cr Repo, f Formatter) *Service {
	return &Service{
		repo:      cr,
		formatter: f,
	}
}

// Table loads and validates the tenant's rate table.
func (s *Service) Table(ctx context.Context, tenantID string) (*RateTable, error) {
	l := zerolog.Ctx(ctx)

	rates, err := s.repo.ListRates(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	table, err := NewRateTable(rates)
	if err != nil {
		l.Error().Err(err).Str("tenant_id", tenantID).Msg("invalid rate table")
		return nil, err
	}

	return table, nil
}

// Rates returns the tenant's validated rate records.
func (s *Service) Rates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error) {
	table, err := s.Table(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return table.Rates(), nil
}

// Convert converts amount between two of the tenant's currencies.
func (s *Service) Convert(ctx context.Context, tenantID string, amount decimal.Decimal, from, to string) (domain.Conversion, error) {
	table, err := s.Table(ctx, tenantID)
	if err != nil {
		return domain.Conversion{}, err
	}

	result, err := Convert(amount, from, to, table)
	if err != nil {
		return domain.Conversion{}, err
	}

	toRate, _ := table.Rate(to)

	return domain.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: s.formatter.Format(result, toRate),
	}, nil
}

// Format renders amount in the tenant's currency code.
func (s *Service) Format(ctx context.Context, tenantID string, amount decimal.Decimal, code string) (string, error) {
	table, err := s.Table(ctx, tenantID)
	if err != nil {
		return "", err
	}

	rate, err := table.Rate(code)
	if err != nil {
		return "", err
	}

	return s.formatter.Format(amount, rate), nil
}

// PutRate imports one rate into the tenant's table at the given display position.
// A base currency must carry a rate of exactly one.
func (s *Service) PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error {
	l := zerolog.Ctx(ctx)

	if !c.ExchangeRateToBase.IsPositive() || (c.IsBase && !c.ExchangeRateToBase.Equal(decimal.NewFromInt(1))) {
		l.Info().Str("code", c.Code).Str("rate", c.ExchangeRateToBase.String()).Msg(domain.ErrInvalidRate.Error())
		return domain.ErrInvalidRate
	}

	if err := s.repo.PutRate(ctx, tenantID, c, position); err != nil {
		return err
	}

	l.Info().Str("tenant_id", tenantID).Str("code", c.Code).Msg("rate imported")

	return nil
}
