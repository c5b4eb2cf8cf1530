package inventory

import (
	"context"

	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
)

type Repository interface {
	// GetVariant resolves a variant scoped to its product; (nil, nil) when
	// either id is unknown.
	GetVariant(ctx context.Context, productID, variantID string) (*model.ProductVariant, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// ApplyStockChange commits the stock write, the optional movement log
	// entry and the optional alert in a single transaction.
	ApplyStockChange(ctx context.Context, v *model.ProductVariant, logEntry *model.InventoryLog, a *model.Alert) error

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryLog, int, error)
}
