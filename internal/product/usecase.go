package product

import (
	"context"
	"errors"

	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product/dto"
)

var (
	ErrInvalidInput    = errors.New("missing or invalid product fields")
	ErrNoVariants      = errors.New("at least one variant is required")
	ErrUnknownCategory = errors.New("category does not exist")
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	// DeleteProduct is idempotent: deleting an unknown id is a no-op.
	DeleteProduct(ctx context.Context, id string) error

	FindByBarcode(ctx context.Context, code string) (*model.Product, *model.ProductVariant, error)
}
