// Package stockrepo manages repository layer of inventory items and stock.
package stockrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/dbpkg"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

// RepoPGS facilitates stock repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns stock RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listItemsQuery = `
SELECT
	id, sku, name, reorder_level, reorder_quantity
FROM inventory_items
WHERE tenant_id = $1
ORDER BY sku
`

// ListItems returns the tenant's inventory items.
func (r *RepoPGS) ListItems(ctx context.Context, tenantID string) ([]domain.InventoryItem, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listItemsQuery, tenantID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.InventoryItem{}

	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.ReorderLevel, &it.ReorderQuantity); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listStockQuery = `
SELECT
	item_id, location_id, quantity_on_hand, quantity_reserved
FROM inventory_stock
WHERE tenant_id = $1
ORDER BY item_id, location_id
`

// ListStock returns the tenant's stock records across all locations.
func (r *RepoPGS) ListStock(ctx context.Context, tenantID string) ([]domain.StockRecord, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listStockQuery, tenantID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	records := []domain.StockRecord{}

	for rows.Next() {
		var s domain.StockRecord
		if err := rows.Scan(&s.ItemID, &s.LocationID, &s.OnHand, &s.Reserved); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		records = append(records, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return records, nil
}

const createItemQuery = `
INSERT INTO inventory_items (id, tenant_id, sku, name, reorder_level, reorder_quantity)
VALUES ($1, $2, $3, $4, $5, $6)
`

// CreateItem stores an inventory item.
func (r *RepoPGS) CreateItem(ctx context.Context, tenantID string, it domain.InventoryItem) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, createItemQuery, it.ID, tenantID, it.SKU, it.Name, it.ReorderLevel, it.ReorderQuantity)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const putStockQuery = `
INSERT INTO inventory_stock (tenant_id, item_id, location_id, quantity_on_hand, quantity_reserved)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tenant_id, item_id, location_id)
DO UPDATE SET quantity_on_hand = EXCLUDED.quantity_on_hand, quantity_reserved = EXCLUDED.quantity_reserved
`

// PutStock stores the quantities of an item at a location.
func (r *RepoPGS) PutStock(ctx context.Context, tenantID string, s domain.StockRecord) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, putStockQuery, tenantID, s.ItemID, s.LocationID, s.OnHand, s.Reserved)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return domain.ErrDataQuality
		}

		return errorspkg.ErrInternal
	}

	return nil
}
