// Package helpers provides seed and comparison helpers shared by integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/pet-books/internal/creditrepo"
	"github.com/go-petr/pet-books/internal/currencyrepo"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/invoicerepo"
	"github.com/go-petr/pet-books/internal/reconrepo"
	"github.com/go-petr/pet-books/internal/stockrepo"
	"github.com/go-petr/pet-books/pkg/dbpkg"
)

// SeedCreditProfile creates a random credit profile inside a test transaction.
func SeedCreditProfile(t *testing.T, tx dbpkg.SQLInterface, tenantID string) domain.CreditProfile {
	t.Helper()

	arg := RandomCreditProfile()

	profile, err := creditrepo.NewRepoPGS(tx).Upsert(context.Background(), tenantID, arg)
	if err != nil {
		t.Fatalf("creditRepo.Upsert(context.Background(), %v, %+v) returned error: %v", tenantID, arg, err)
	}

	return profile
}

// SeedInvoice creates an open invoice due daysPastDue days before asOf.
func SeedInvoice(t *testing.T, tx dbpkg.SQLInterface, tenantID, customerID string, daysPastDue int) domain.Invoice {
	t.Helper()

	inv := RandomInvoice(customerID, daysPastDue)

	if err := invoicerepo.NewRepoPGS(tx).Create(context.Background(), tenantID, inv); err != nil {
		t.Fatalf("invoiceRepo.Create(context.Background(), %v, %+v) returned error: %v", tenantID, inv, err)
	}

	return inv
}

// SeedInvoices creates count open invoices of the customer with random ages.
func SeedInvoices(t *testing.T, tx dbpkg.SQLInterface, tenantID, customerID string, count int) []domain.Invoice {
	t.Helper()

	invoices := make([]domain.Invoice, count)

	for i := range invoices {
		invoices[i] = SeedInvoice(t, tx, tenantID, customerID, i*17-20)
	}

	return invoices
}

// SeedReconTransaction creates a reconciliation transaction inside a test transaction.
func SeedReconTransaction(t *testing.T, tx dbpkg.SQLInterface, tenantID string, matched bool) domain.ReconTransaction {
	t.Helper()

	arg := RandomReconTransaction(matched)

	got, err := reconrepo.NewRepoPGS(tx).Create(context.Background(), tenantID, arg)
	if err != nil {
		t.Fatalf("reconRepo.Create(context.Background(), %v, %+v) returned error: %v", tenantID, arg, err)
	}

	return got
}

// SeedInventoryItem creates a random inventory item inside a test transaction.
func SeedInventoryItem(t *testing.T, tx dbpkg.SQLInterface, tenantID string) domain.InventoryItem {
	t.Helper()

	item := RandomInventoryItem()

	if err := stockrepo.NewRepoPGS(tx).CreateItem(context.Background(), tenantID, item); err != nil {
		t.Fatalf("stockRepo.CreateItem(context.Background(), %v, %+v) returned error: %v", tenantID, item, err)
	}

	return item
}

// SeedStock stores stock of the item at a random location.
func SeedStock(t *testing.T, tx dbpkg.SQLInterface, tenantID, itemID string) domain.StockRecord {
	t.Helper()

	s := RandomStockRecord(itemID)

	if err := stockrepo.NewRepoPGS(tx).PutStock(context.Background(), tenantID, s); err != nil {
		t.Fatalf("stockRepo.PutStock(context.Background(), %v, %+v) returned error: %v", tenantID, s, err)
	}

	return s
}

// SeedRateTable stores a USD based rate table and returns it in display order.
func SeedRateTable(t *testing.T, tx dbpkg.SQLInterface, tenantID string) []domain.CurrencyRate {
	t.Helper()

	rates := RateTable()
	repo := currencyrepo.NewRepoPGS(tx)

	for i, r := range rates {
		if err := repo.PutRate(context.Background(), tenantID, r, i); err != nil {
			t.Fatalf("currencyRepo.PutRate(context.Background(), %v, %+v, %d) returned error: %v", tenantID, r, i, err)
		}
	}

	return rates
}
