// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrCustomerNotFound indicates that the customer credit profile is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CreditProfile holds the credit standing of a customer.
type CreditProfile struct {
	CustomerID     string          `json:"customer_id"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"` // may exceed the credit limit
}

// CreditEvaluation is the derived credit position of a customer.
type CreditEvaluation struct {
	CustomerID      string          `json:"customer_id"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"` // negative when over limit
	WithinLimit     bool            `json:"within_limit"`
	UtilizationPct  decimal.Decimal `json:"utilization_pct"`
}

// CreditProfileParams is the raw input used to build a CreditProfile.
type CreditProfileParams struct {
	CustomerID     string `json:"customer_id"`
	CreditLimit    string `json:"credit_limit" binding:"required"`
	CurrentBalance string `json:"current_balance" binding:"required"`
}

// Profile parses params into a CreditProfile.
func (p CreditProfileParams) Profile() (CreditProfile, error) {
	limit, err := decimal.NewFromString(p.CreditLimit)
	if err != nil {
		return CreditProfile{}, ErrInvalidAmount
	}

	balance, err := decimal.NewFromString(p.CurrentBalance)
	if err != nil {
		return CreditProfile{}, ErrInvalidAmount
	}

	return CreditProfile{
		CustomerID:     p.CustomerID,
		CreditLimit:    limit,
		CurrentBalance: balance,
	}, nil
}
