package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice holds an open receivable balance.
//
// A zero DueDate means the backend had no due date for the invoice.
type Invoice struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  time.Time       `json:"issue_date"`
	DueDate    time.Time       `json:"due_date"`
}

// InvoiceParams is the raw input used to build an Invoice.
type InvoiceParams struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount" binding:"required"`
	IssueDate  string `json:"issue_date"`
	DueDate    string `json:"due_date"`
}

// Invoice parses params into an Invoice.
func (p InvoiceParams) Invoice() (Invoice, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return Invoice{}, ErrInvalidAmount
	}

	issued, err := ParseDate(p.IssueDate)
	if err != nil {
		return Invoice{}, err
	}

	due, err := ParseDate(p.DueDate)
	if err != nil {
		return Invoice{}, err
	}

	return Invoice{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Amount:     amount,
		IssueDate:  issued,
		DueDate:    due,
	}, nil
}

// AgingRow holds outstanding receivables of one customer split by days past due.
type AgingRow struct {
	CustomerID string          `json:"customer_id"`
	Current    decimal.Decimal `json:"current"`
	D30        decimal.Decimal `json:"d30"`
	D60        decimal.Decimal `json:"d60"`
	D90        decimal.Decimal `json:"d90"`
	Over90     decimal.Decimal `json:"over90"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

// AgingReport is the aging table as of a reference date.
type AgingReport struct {
	AsOf   time.Time  `json:"as_of"`
	Rows   []AgingRow `json:"rows"`
	Totals AgingRow   `json:"totals"`
}

// CustomerStatement combines the credit and aging position of one customer.
type CustomerStatement struct {
	CustomerID string           `json:"customer_id"`
	AsOf       time.Time        `json:"as_of"`
	Credit     CreditEvaluation `json:"credit"`
	Aging      AgingRow         `json:"aging"`
}
