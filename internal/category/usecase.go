package category

import (
	"context"
	"errors"

	"github.com/stokk/inventory-service/internal/category/dto"
	"github.com/stokk/inventory-service/internal/model"
)

var (
	ErrDuplicateName = errors.New("category name already exists")
	ErrCategoryInUse = errors.New("category is referenced by products")
	ErrEmptyName     = errors.New("category name is required")
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	// DeleteCategory is a no-op on unknown ids and fails with ErrCategoryInUse
	// while any product references the category.
	DeleteCategory(ctx context.Context, id string) error
}
