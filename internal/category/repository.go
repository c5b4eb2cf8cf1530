package category

import (
	"context"

	"github.com/stokk/inventory-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id string) error

	// CountProducts reports how many products reference the category.
	CountProducts(ctx context.Context, categoryID string) (int, error)
}
