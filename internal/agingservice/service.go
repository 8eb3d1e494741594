// Package agingservice manages business logic layer of receivables aging.
package agingservice

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

// Bucket upper bounds in days past due.
const (
	currentDays = 0
	d30Days     = 30
	d60Days     = 60
	d90Days     = 90
)

// AgeDays returns whole calendar days from due to asOf.
// It is zero or negative while the invoice is not yet due.
func AgeDays(due, asOf time.Time) int {
	return int(civilDate(asOf).Sub(civilDate(due)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate reports every invoice that cannot be aged.
func Validate(invoices []domain.Invoice) error {
	var issues []domain.DataQualityIssue

	for i, inv := range invoices {
		id := inv.ID
		if id == "" {
			id = "#" + strconv.Itoa(i)
		}

		if inv.CustomerID == "" {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "customer_id", Reason: "missing"})
		}

		if inv.Amount.IsNegative() {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "amount", Reason: "negative"})
		}

		if inv.DueDate.IsZero() {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "due_date", Reason: "missing"})
			continue
		}

		if !inv.IssueDate.IsZero() && civilDate(inv.DueDate).Before(civilDate(inv.IssueDate)) {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "due_date", Reason: "before issue date"})
		}
	}

	if len(issues) > 0 {
		return &domain.DataQualityError{Issues: issues}
	}

	return nil
}

func add(row *domain.AgingRow, amount decimal.Decimal, days int) {
	switch {
	case days <= currentDays:
		row.Current = row.Current.Add(amount)
	case days <= d30Days:
		row.D30 = row.D30.Add(amount)
	case days <= d60Days:
		row.D60 = row.D60.Add(amount)
	case days <= d90Days:
		row.D90 = row.D90.Add(amount)
	default:
		row.Over90 = row.Over90.Add(amount)
	}

	row.TotalDue = row.TotalDue.Add(amount)
}

func newRow(customerID string) domain.AgingRow {
	return domain.AgingRow{
		CustomerID: customerID,
		Current:    decimal.Zero,
		D30:        decimal.Zero,
		D60:        decimal.Zero,
		D90:        decimal.Zero,
		Over90:     decimal.Zero,
		TotalDue:   decimal.Zero,
	}
}

func sumRows(rows []domain.AgingRow) domain.AgingRow {
	t := newRow("")
	for _, r := range rows {
		t.Current = t.Current.Add(r.Current)
		t.D30 = t.D30.Add(r.D30)
		t.D60 = t.D60.Add(r.D60)
		t.D90 = t.D90.Add(r.D90)
		t.Over90 = t.Over90.Add(r.Over90)
		t.TotalDue = t.TotalDue.Add(r.TotalDue)
	}

	return t
}

// Bucket ages the invoices as of asOf.
//
// Rows follow the order in which customers first appear in invoices.
// Malformed invoices are rejected with a *domain.DataQualityError.
func Bucket(invoices []domain.Invoice, asOf time.Time) (domain.AgingReport, error) {
	if err := Validate(invoices); err != nil {
		return domain.AgingReport{}, err
	}

	index := make(map[string]int)
	rows := make([]domain.AgingRow, 0)

	for _, inv := range invoices {
		i, ok := index[inv.CustomerID]
		if !ok {
			i = len(rows)
			index[inv.CustomerID] = i
			rows = append(rows, newRow(inv.CustomerID))
		}

		add(&rows[i], inv.Amount, AgeDays(inv.DueDate, asOf))
	}

	return domain.AgingReport{
		AsOf:   civilDate(asOf),
		Rows:   rows,
		Totals: sumRows(rows),
	}, nil
}

// Repo provides data access layer interface needed by aging service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package agingservice
type Repo interface {
	ListOpen(ctx context.Context, tenantID string) ([]domain.Invoice, error)
	ListOpenByCustomer(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error)
}

// Service facilitates aging service layer logic.
type Service struct {
	repo Repo
}

// New returns aging service struct to manage aging bussines logic.
func New(ir Repo) *Service {
	return &Service{repo: ir}
}

// Report ages all open invoices of the tenant.
func (s *Service) Report(ctx context.Context, tenantID string, asOf time.Time) (domain.AgingReport, error) {
	l := zerolog.Ctx(ctx)

	invoices, err := s.repo.ListOpen(ctx, tenantID)
	if err != nil {
		return domain.AgingReport{}, err
	}

	report, err := Bucket(invoices, asOf)
	if err != nil {
		l.Warn().Err(err).Str("tenant_id", tenantID).Msg("aging rejected malformed invoices")
		return domain.AgingReport{}, err
	}

	return report, nil
}

// CustomerRow ages open invoices of a single customer.
// A customer without open invoices gets a zero row.
func (s *Service) CustomerRow(ctx context.Context, tenantID, customerID string, asOf time.Time) (domain.AgingRow, error) {
	invoices, err := s.repo.ListOpenByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return domain.AgingRow{}, err
	}

	report, err := Bucket(invoices, asOf)
	if err != nil {
		return domain.AgingRow{}, err
	}

	if len(report.Rows) == 0 {
		return newRow(customerID), nil
	}

	return report.Rows[0], nil
}
