package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokk/inventory-service/internal/category"
	"github.com/stokk/inventory-service/internal/category/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/logger"
)

type mockCategoryUC struct {
	categories []model.Category
	createErr  error
	deleteErr  error
	updated    *model.Category
}

func (m *mockCategoryUC) CreateCategory(_ context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &model.Category{ID: "cat-1", Name: input.Name}, nil
}

func (m *mockCategoryUC) ListCategories(_ context.Context) ([]model.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryUC) UpdateCategory(_ context.Context, _ *dto.UpdateCategoryInput) (*model.Category, error) {
	return m.updated, nil
}

func (m *mockCategoryUC) DeleteCategory(_ context.Context, _ string) error {
	return m.deleteErr
}

func setupRouter(uc category.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCategoryHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestCreateCategoryHandler(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		uc         *mockCategoryUC
		wantStatus int
	}{
		{"created", `{"name":"Vestidos"}`, &mockCategoryUC{}, http.StatusCreated},
		{"malformed json", `{"name":`, &mockCategoryUC{}, http.StatusBadRequest},
		{"empty name", `{"name":""}`, &mockCategoryUC{createErr: category.ErrEmptyName}, http.StatusBadRequest},
		{"duplicate", `{"name":"Vestidos"}`, &mockCategoryUC{createErr: category.ErrDuplicateName}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(tc.uc)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestListCategoriesHandler(t *testing.T) {
	uc := &mockCategoryUC{categories: []model.Category{
		{ID: "cat-1", Name: "Vestidos"},
		{ID: "cat-2", Name: "Calcas"},
	}}
	r := setupRouter(uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestUpdateCategoryHandler_UnknownID(t *testing.T) {
	r := setupRouter(&mockCategoryUC{updated: nil})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/ghost", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		r := setupRouter(&mockCategoryUC{deleteErr: category.ErrCategoryInUse})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/categories/cat-1", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("gone or never existed", func(t *testing.T) {
		r := setupRouter(&mockCategoryUC{})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/categories/ghost", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
