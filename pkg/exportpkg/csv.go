// Package exportpkg serializes computed ledger tables for download.
package exportpkg

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

// TotalLabel marks the grand total row of an exported table.
const TotalLabel = "TOTAL"

// AgingHeader is the column order of an exported aging report.
var AgingHeader = []string{"customer_id", "current", "d30", "d60", "d90", "over90", "total_due"}

// ReconHeader is the column order of an exported reconciliation.
var ReconHeader = []string{"id", "date", "description", "bank_amount", "book_amount", "matched"}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func agingRecord(label string, r domain.AgingRow) []string {
	return []string{label, money(r.Current), money(r.D30), money(r.D60), money(r.D90), money(r.Over90), money(r.TotalDue)}
}

// WriteAgingCSV writes the report rows in order followed by the totals row.
func WriteAgingCSV(w io.Writer, report domain.AgingReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(AgingHeader); err != nil {
		return err
	}

	for _, r := range report.Rows {
		if err := cw.Write(agingRecord(r.CustomerID, r)); err != nil {
			return err
		}
	}

	if err := cw.Write(agingRecord(TotalLabel, report.Totals)); err != nil {
		return err
	}

	cw.Flush()

	return cw.Error()
}

// WriteReconCSV writes the transactions in order followed by the difference row.
func WriteReconCSV(w io.Writer, rec domain.Reconciliation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ReconHeader); err != nil {
		return err
	}

	for _, tx := range rec.Transactions {
		record := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Date.Format(domain.DateLayout),
			tx.Description,
			money(tx.BankAmount),
			money(tx.BookAmount),
			strconv.FormatBool(tx.Matched),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	s := rec.Summary
	if err := cw.Write([]string{TotalLabel, "", "difference", money(s.UnmatchedBank), money(s.UnmatchedBook), money(s.Difference)}); err != nil {
		return err
	}

	cw.Flush()

	return cw.Error()
}
