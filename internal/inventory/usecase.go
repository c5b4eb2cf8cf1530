package inventory

import (
	"context"
	"errors"

	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
)

var (
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrUnknownKind      = errors.New("unknown operation kind")
)

type UseCase interface {
	// SetVariantStock sets the stock count directly (manual correction, no
	// movement entry). Unknown product/variant ids are a no-op returning
	// (nil, nil).
	SetVariantStock(ctx context.Context, input *dto.SetStockInput) (*model.ProductVariant, error)

	// ProcessOperation applies a batch of IN/OUT/ADJUST mutations. Items
	// referencing unknown ids are skipped; a storage failure aborts the rest
	// of the batch. OUT and downward ADJUST clamp at zero.
	ProcessOperation(ctx context.Context, items []dto.StockOperationItem, kind, reason string) error

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryLog, int, error)
}
