// Package reconservice manages business logic layer of bank reconciliation.
package reconservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

func clone(set []domain.ReconTransaction) []domain.ReconTransaction {
	out := make([]domain.ReconTransaction, len(set))
	copy(out, set)

	return out
}

// ToggleMatch returns a copy of set with the matched flag of id flipped.
// The input set is never modified.
func ToggleMatch(set []domain.ReconTransaction, id int64) ([]domain.ReconTransaction, error) {
	for i := range set {
		if set[i].ID == id {
			out := clone(set)
			out[i].Matched = !out[i].Matched

			return out, nil
		}
	}

	return set, domain.ErrTransactionNotFound
}

// Difference returns unmatched bank total minus unmatched book total.
func Difference(set []domain.ReconTransaction) decimal.Decimal {
	return Summarize(set).Difference
}

// Summarize computes reconciliation totals over set.
func Summarize(set []domain.ReconTransaction) domain.ReconSummary {
	s := domain.ReconSummary{
		UnmatchedBank: decimal.Zero,
		UnmatchedBook: decimal.Zero,
	}

	for _, tx := range set {
		if tx.Matched {
			s.MatchedCount++
			continue
		}

		s.UnmatchedCount++
		s.UnmatchedBank = s.UnmatchedBank.Add(tx.BankAmount)
		s.UnmatchedBook = s.UnmatchedBook.Add(tx.BookAmount)
	}

	s.Difference = s.UnmatchedBank.Sub(s.UnmatchedBook)
	s.Balanced = s.Difference.IsZero()

	return s
}

// AutoMatch marks every unmatched transaction whose bank and book amounts are
// equal as matched. It returns the new set and the ids it flipped.
//
// Operators still own the matched flag: AutoMatch only runs on request.
func AutoMatch(set []domain.ReconTransaction) ([]domain.ReconTransaction, []int64) {
	out := clone(set)
	matched := make([]int64, 0)

	for i := range out {
		if out[i].Matched || !out[i].BankAmount.Equal(out[i].BookAmount) {
			continue
		}

		out[i].Matched = true
		matched = append(matched, out[i].ID)
	}

	return out, matched
}

// Repo provides data access layer interface needed by reconciliation service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reconservice
type Repo interface {
	List(ctx context.Context, tenantID string) ([]domain.ReconTransaction, error)
	ToggleMatched(ctx context.Context, tenantID string, id int64) (bool, error)
	MatchEqualAmounts(ctx context.Context, tenantID string) ([]int64, error)
}

// Service facilitates reconciliation service layer logic.
type Service struct {
	repo Repo
}

// New returns reconciliation service struct to manage reconciliation bussines logic.
func New(rr Repo) *Service {
	return &Service{repo: rr}
}

func view(set []domain.ReconTransaction) domain.Reconciliation {
	return domain.Reconciliation{
		Transactions: set,
		Summary:      Summarize(set),
	}
}

// Get returns the tenant's transaction set with its summary.
func (s *Service) Get(ctx context.Context, tenantID string) (domain.Reconciliation, error) {
	set, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return domain.Reconciliation{}, err
	}

	return view(set), nil
}

// Toggle flips the matched flag of the transaction in storage and returns
// the reloaded set. The flip happens in a single statement, so concurrent
// toggles of one transaction never cancel each other out.
func (s *Service) Toggle(ctx context.Context, tenantID string, id int64) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	matched, err := s.repo.ToggleMatched(ctx, tenantID, id)
	if err != nil {
		l.Info().Err(err).Int64("transaction_id", id).Send()
		return domain.Reconciliation{}, err
	}

	l.Info().Int64("transaction_id", id).Bool("matched", matched).Str("tenant_id", tenantID).Msg("match toggled")

	return s.Get(ctx, tenantID)
}

// AutoMatch matches equal-amount transactions in storage and returns the
// reloaded set with the flipped ids. Rows an operator unmatched while it
// runs are only touched if their amounts still agree at write time.
func (s *Service) AutoMatch(ctx context.Context, tenantID string) (domain.Reconciliation, []int64, error) {
	l := zerolog.Ctx(ctx)

	ids, err := s.repo.MatchEqualAmounts(ctx, tenantID)
	if err != nil {
		return domain.Reconciliation{}, nil, err
	}

	l.Info().Int("matched", len(ids)).Str("tenant_id", tenantID).Msg("auto match completed")

	rec, err := s.Get(ctx, tenantID)
	if err != nil {
		return domain.Reconciliation{}, nil, err
	}

	return rec, ids, nil
}
