package sale

import (
	"context"

	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/sale/dto"
)

type Repository interface {
	// Create inserts the sale and all of its line items in one transaction.
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
	// Delete removes the sale and its items; backs out a sale whose stock
	// deduction failed.
	Delete(ctx context.Context, id string) error
}
