package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokk/inventory-service/internal/category"
	"github.com/stokk/inventory-service/internal/category/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/logger"
)

type mockCategoryRepo struct {
	byID     map[string]*model.Category
	products map[string]int
	deleted  []string
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		byID:     make(map[string]*model.Category),
		products: make(map[string]int),
	}
}

func (m *mockCategoryRepo) Create(_ context.Context, c *model.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	return m.byID[id], nil
}

func (m *mockCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range m.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c *model.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCategoryRepo) CountProducts(_ context.Context, categoryID string) (int, error) {
	return m.products[categoryID], nil
}

func TestCreateCategory(t *testing.T) {
	repo := newMockCategoryRepo()
	uc := NewCategoryUseCase(repo, logger.NewNop())
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "  Vestidos  "})
	require.NoError(t, err)
	assert.Equal(t, "Vestidos", cat.Name)
	assert.NotEmpty(t, cat.ID)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Vestidos"})
	assert.ErrorIs(t, err, category.ErrDuplicateName)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "   "})
	assert.ErrorIs(t, err, category.ErrEmptyName)
}

func TestUpdateCategory_Rename(t *testing.T) {
	repo := newMockCategoryRepo()
	uc := NewCategoryUseCase(repo, logger.NewNop())
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Calcas"})
	require.NoError(t, err)
	other, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Saias"})
	require.NoError(t, err)

	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: "Calcas Jeans"})
	require.NoError(t, err)
	assert.Equal(t, "Calcas Jeans", updated.Name)

	// Renaming onto another category's name is a conflict; renaming onto
	// your own name is not.
	_, err = uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: other.Name})
	assert.ErrorIs(t, err, category.ErrDuplicateName)
	_, err = uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: "Calcas Jeans"})
	assert.NoError(t, err)
}

func TestUpdateCategory_UnknownIDIsNoOp(t *testing.T) {
	uc := NewCategoryUseCase(newMockCategoryRepo(), logger.NewNop())
	cat, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: "ghost", Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestDeleteCategory(t *testing.T) {
	repo := newMockCategoryRepo()
	uc := NewCategoryUseCase(repo, logger.NewNop())
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Acessorios"})
	require.NoError(t, err)

	repo.products[cat.ID] = 2
	err = uc.DeleteCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, category.ErrCategoryInUse)

	repo.products[cat.ID] = 0
	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))
	assert.Equal(t, []string{cat.ID}, repo.deleted)

	// Deleting again, or deleting an id that never existed, succeeds quietly.
	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))
	require.NoError(t, uc.DeleteCategory(ctx, "ghost"))
	assert.Len(t, repo.deleted, 1)
}
