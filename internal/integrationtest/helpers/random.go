package helpers

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/randompkg"
)

// EquateDecimal compares decimals by value so that "10" equals "10.0000".
func EquateDecimal() cmp.Option {
	return cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})
}

// Today returns the current UTC date at midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RandomCreditProfile returns a profile of a random customer.
func RandomCreditProfile() domain.CreditProfile {
	return domain.CreditProfile{
		CustomerID:     randompkg.CustomerID(),
		CreditLimit:    randompkg.Decimal(1_000, 10_000),
		CurrentBalance: randompkg.Decimal(0, 12_000),
	}
}

// RandomInvoice returns an invoice of the customer due daysPastDue days ago.
func RandomInvoice(customerID string, daysPastDue int) domain.Invoice {
	due := Today().AddDate(0, 0, -daysPastDue)

	return domain.Invoice{
		ID:         "inv_" + uuid.NewString(),
		CustomerID: customerID,
		Amount:     randompkg.Decimal(10, 5_000),
		IssueDate:  due.AddDate(0, 0, -30),
		DueDate:    due,
	}
}

// RandomReconTransaction returns a transaction whose bank and book amounts
// agree when matched is set.
func RandomReconTransaction(matched bool) domain.ReconTransaction {
	bank := randompkg.Decimal(-2_000, 2_000)
	book := bank

	if !matched {
		book = bank.Add(randompkg.Decimal(1, 50))
	}

	return domain.ReconTransaction{
		Date:        Today().AddDate(0, 0, -int(randompkg.Intn(30))),
		Description: randompkg.String(16),
		BankAmount:  bank,
		BookAmount:  book,
		Matched:     matched,
	}
}

// RandomInventoryItem returns an item with a random reorder policy.
func RandomInventoryItem() domain.InventoryItem {
	return domain.InventoryItem{
		ID:              "item_" + randompkg.String(8),
		SKU:             "SKU-" + randompkg.String(6),
		Name:            randompkg.String(10),
		ReorderLevel:    decimal.NewFromInt(randompkg.IntBetween(5, 20)),
		ReorderQuantity: decimal.NewFromInt(randompkg.IntBetween(20, 100)),
	}
}

// RandomStockRecord returns stock of the item at a random location.
func RandomStockRecord(itemID string) domain.StockRecord {
	return domain.StockRecord{
		ItemID:     itemID,
		LocationID: "loc_" + randompkg.String(6),
		OnHand:     decimal.NewFromInt(randompkg.IntBetween(0, 50)),
		Reserved:   decimal.NewFromInt(randompkg.IntBetween(0, 5)),
	}
}

// RateTable returns a valid USD based rate table.
func RateTable() []domain.CurrencyRate {
	return []domain.CurrencyRate{
		{Code: "USD", Symbol: "$", ExchangeRateToBase: decimal.NewFromInt(1), IsBase: true},
		{Code: "EUR", Symbol: "€", ExchangeRateToBase: decimal.RequireFromString("0.9236")},
		{Code: "GBP", Symbol: "£", ExchangeRateToBase: decimal.RequireFromString("0.7912")},
		{Code: "JPY", Symbol: "¥", ExchangeRateToBase: decimal.RequireFromString("149.5")},
	}
}
