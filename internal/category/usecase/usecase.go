package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stokk/inventory-service/internal/category"
	"github.com/stokk/inventory-service/internal/category/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, category.ErrEmptyName
	}

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, category.ErrDuplicateName
	}

	cat := &model.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, category.ErrEmptyName
	}

	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		// Unknown id: not an error for update, nothing to change.
		return nil, nil
	}

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != cat.ID {
		return nil, category.ErrDuplicateName
	}

	// Products reference the category by id, so a rename does not cascade
	// anywhere.
	cat.Name = name
	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}

	count, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		uc.logger.Debug("refusing to delete referenced category",
			zap.String("category_id", id), zap.Int("products", count))
		return category.ErrCategoryInUse
	}

	return uc.repo.Delete(ctx, id)
}
