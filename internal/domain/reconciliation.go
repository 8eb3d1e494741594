package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransactionNotFound indicates that the reconciliation transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// ReconTransaction is a bank feed line paired with its book ledger line.
//
// Matched is toggled by an operator only. BankAmount and BookAmount are
// independent and may differ.
type ReconTransaction struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	BankAmount  decimal.Decimal `json:"bank_amount"`
	BookAmount  decimal.Decimal `json:"book_amount"`
	Matched     bool            `json:"matched"`
}

// ReconSummary holds reconciliation totals for a transaction set.
type ReconSummary struct {
	MatchedCount   int             `json:"matched_count"`
	UnmatchedCount int             `json:"unmatched_count"`
	UnmatchedBank  decimal.Decimal `json:"unmatched_bank"`
	UnmatchedBook  decimal.Decimal `json:"unmatched_book"`
	Difference     decimal.Decimal `json:"difference"`
	Balanced       bool            `json:"balanced"`
}

// Reconciliation is a transaction set with its summary.
type Reconciliation struct {
	Transactions []ReconTransaction `json:"transactions"`
	Summary      ReconSummary       `json:"summary"`
}
