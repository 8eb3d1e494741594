// Package stockservice manages business logic layer of inventory replenishment.
package stockservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
)

// Validate reports stock records with negative quantities.
func Validate(stock []domain.StockRecord) error {
	var issues []domain.DataQualityIssue

	for _, s := range stock {
		id := s.ItemID + "@" + s.LocationID

		if s.OnHand.IsNegative() {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "quantity_on_hand", Reason: "negative"})
		}

		if s.Reserved.IsNegative() {
			issues = append(issues, domain.DataQualityIssue{RecordID: id, Field: "quantity_reserved", Reason: "negative"})
		}
	}

	if len(issues) > 0 {
		return &domain.DataQualityError{Issues: issues}
	}

	return nil
}

// AvailableByItem sums available quantity across locations per item id.
func AvailableByItem(stock []domain.StockRecord) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, s := range stock {
		out[s.ItemID] = out[s.ItemID].Add(s.Available())
	}

	return out
}

// SuggestReorder returns the quantity to reorder for item.
// It is the item's configured reorder quantity whatever the current stock.
func SuggestReorder(item domain.InventoryItem, _ decimal.Decimal) decimal.Decimal {
	return item.ReorderQuantity
}

// LowStock returns items whose summed available quantity is at or below
// their reorder level, in the order of items.
//
// Items without stock records count as zero available.
func LowStock(items []domain.InventoryItem, stock []domain.StockRecord) ([]domain.LowStockItem, error) {
	if err := Validate(stock); err != nil {
		return nil, err
	}

	available := AvailableByItem(stock)
	low := make([]domain.LowStockItem, 0)

	for _, item := range items {
		qty, ok := available[item.ID]
		if !ok {
			qty = decimal.Zero
		}

		if qty.GreaterThan(item.ReorderLevel) {
			continue
		}

		low = append(low, domain.LowStockItem{
			Item:              item,
			Available:         qty,
			SuggestedQuantity: SuggestReorder(item, qty),
		})
	}

	return low, nil
}

// Repo provides data access layer interface needed by stock service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package stockservice
type Repo interface {
	ListItems(ctx context.Context, tenantID string) ([]domain.InventoryItem, error)
	ListStock(ctx context.Context, tenantID string) ([]domain.StockRecord, error)
}

// Service facilitates stock service layer logic.
type Service struct {
	repo Repo
}

// New returns stock service struct to manage stock bussines logic.
func New(sr Repo) *Service {
	return &Service{repo: sr}
}

// LowStock loads items and stock of the tenant and returns the low ones.
func (s *Service) LowStock(ctx context.Context, tenantID string) ([]domain.LowStockItem, error) {
	l := zerolog.Ctx(ctx)

	items, err := s.repo.ListItems(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	stock, err := s.repo.ListStock(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	low, err := LowStock(items, stock)
	if err != nil {
		l.Warn().Err(err).Str("tenant_id", tenantID).Msg("low stock rejected malformed stock")
		return nil, err
	}

	return low, nil
}
