package product

import (
	"context"

	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product/dto"
)

type Repository interface {
	// Create inserts the product and all of its variants in one transaction.
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, p *model.Product) error
	// Delete removes the product and its variants; unknown ids are a no-op.
	Delete(ctx context.Context, id string) error

	// FindByBarcode resolves an exact barcode match to its owning product and
	// variant; (nil, nil, nil) when absent.
	FindByBarcode(ctx context.Context, code string) (*model.Product, *model.ProductVariant, error)
}
