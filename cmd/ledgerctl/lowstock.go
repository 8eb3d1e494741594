package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/stockservice"
)

func newLowStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lowstock",
		Short:   "List items at or below their reorder level",
		Example: `  ledgerctl lowstock --items items.json --stock stock.json`,
		RunE:    runLowStock,
	}

	cmd.Flags().String("items", "", "JSON array of inventory items")
	cmd.Flags().String("stock", "", "JSON array of stock records")
	_ = cmd.MarkFlagRequired("items")
	_ = cmd.MarkFlagRequired("stock")

	return cmd
}

func runLowStock(cmd *cobra.Command, _ []string) error {
	l := zerolog.Ctx(cmd.Context())

	itemsPath, _ := cmd.Flags().GetString("items")
	stockPath, _ := cmd.Flags().GetString("stock")

	var items []domain.InventoryItem
	if err := readJSON(itemsPath, &items); err != nil {
		return err
	}

	var stock []domain.StockRecord
	if err := readJSON(stockPath, &stock); err != nil {
		return err
	}

	l.Debug().Int("items", len(items)).Int("stock", len(stock)).Send()

	low, err := stockservice.LowStock(items, stock)
	if err != nil {
		var dq *domain.DataQualityError
		if errors.As(err, &dq) {
			_ = writeJSON(cmd.OutOrStdout(), dq.Issues)
		}

		return err
	}

	return writeJSON(cmd.OutOrStdout(), low)
}
