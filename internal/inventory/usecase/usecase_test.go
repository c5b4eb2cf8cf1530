package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokk/inventory-service/internal/inventory"
	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/logger"
)

type appliedChange struct {
	stock int
	log   *model.InventoryLog
	alert *model.Alert
}

type mockInventoryRepo struct {
	products map[string]*model.Product
	variants map[string]*model.ProductVariant // key: productID + "/" + variantID
	applied  []appliedChange
	failOn   string // variant id whose ApplyStockChange fails
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{
		products: make(map[string]*model.Product),
		variants: make(map[string]*model.ProductVariant),
	}
}

func (m *mockInventoryRepo) addProduct(p *model.Product, variants ...*model.ProductVariant) {
	m.products[p.ID] = p
	for _, v := range variants {
		v.ProductID = p.ID
		m.variants[p.ID+"/"+v.ID] = v
	}
}

func (m *mockInventoryRepo) GetVariant(_ context.Context, productID, variantID string) (*model.ProductVariant, error) {
	v, ok := m.variants[productID+"/"+variantID]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *mockInventoryRepo) GetProduct(_ context.Context, id string) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *mockInventoryRepo) ApplyStockChange(_ context.Context, v *model.ProductVariant, logEntry *model.InventoryLog, a *model.Alert) error {
	if m.failOn != "" && v.ID == m.failOn {
		return errors.New("storage down")
	}
	stored := m.variants[v.ProductID+"/"+v.ID]
	stored.CurrentStock = v.CurrentStock
	m.applied = append(m.applied, appliedChange{stock: v.CurrentStock, log: logEntry, alert: a})
	return nil
}

func (m *mockInventoryRepo) ListMovements(_ context.Context, _ *dto.MovementFilters) ([]model.InventoryLog, int, error) {
	return nil, 0, nil
}

func fixtureProduct(threshold int) *model.Product {
	p := &model.Product{
		CategoryID:        "cat-1",
		Reference:         "VES-0042",
		Name:              "Vestido Midi",
		Brand:             "Aura",
		MinStockThreshold: threshold,
	}
	p.ID = "prod-1"
	return p
}

func fixtureVariant(id string, stock int) *model.ProductVariant {
	return &model.ProductVariant{
		ID:           id,
		Size:         "M",
		Color:        "Azul",
		Barcode:      "7891234567890",
		SKU:          "VES-AZU-M",
		CurrentStock: stock,
	}
}

func TestProcessOperation_InIncrementsStock(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 10))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(),
		[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: 5}},
		model.MovementIn, "restock")
	require.NoError(t, err)

	require.Len(t, repo.applied, 1)
	assert.Equal(t, 15, repo.applied[0].stock)
	assert.Equal(t, model.MovementIn, repo.applied[0].log.Type)
	assert.Equal(t, 5, repo.applied[0].log.Quantity)
	assert.Equal(t, "restock", repo.applied[0].log.Reason)
	assert.Nil(t, repo.applied[0].alert, "healthy stock must not raise an alert")
}

func TestProcessOperation_OutRecordsNegativeQuantity(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 10))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(),
		[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: 4}},
		model.MovementOut, "sale")
	require.NoError(t, err)

	require.Len(t, repo.applied, 1)
	assert.Equal(t, 6, repo.applied[0].stock)
	assert.Equal(t, -4, repo.applied[0].log.Quantity)
}

func TestProcessOperation_OutClampsAtZero(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 2))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(),
		[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: 10}},
		model.MovementOut, "sale")
	require.NoError(t, err)

	require.Len(t, repo.applied, 1)
	assert.Equal(t, 0, repo.applied[0].stock)
	require.NotNil(t, repo.applied[0].alert)
	assert.Equal(t, model.AlertOutOfStock, repo.applied[0].alert.Type)
}

func TestProcessOperation_AlertBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		start     int
		out       int
		wantAlert string // "" means none
	}{
		{"lands above threshold", 10, 5, ""},
		{"lands exactly on threshold", 10, 7, model.AlertLowStock},
		{"lands below threshold", 10, 8, model.AlertLowStock},
		{"lands on zero", 10, 10, model.AlertOutOfStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockInventoryRepo()
			repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", tc.start))
			uc := NewInventoryUseCase(repo, "en", logger.NewNop())

			err := uc.ProcessOperation(context.Background(),
				[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: tc.out}},
				model.MovementOut, "sale")
			require.NoError(t, err)
			require.Len(t, repo.applied, 1)

			if tc.wantAlert == "" {
				assert.Nil(t, repo.applied[0].alert)
			} else {
				require.NotNil(t, repo.applied[0].alert)
				assert.Equal(t, tc.wantAlert, repo.applied[0].alert.Type)
				assert.Equal(t, "prod-1", repo.applied[0].alert.ProductID)
				assert.NotEmpty(t, repo.applied[0].alert.Message)
			}
		})
	}
}

func TestProcessOperation_AdjustAcceptsSignedDelta(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 5))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(),
		[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: -2}},
		model.MovementAdjust, "recount")
	require.NoError(t, err)

	require.Len(t, repo.applied, 1)
	assert.Equal(t, 3, repo.applied[0].stock)
	assert.Equal(t, -2, repo.applied[0].log.Quantity)
	require.NotNil(t, repo.applied[0].alert)
	assert.Equal(t, model.AlertLowStock, repo.applied[0].alert.Type)
}

func TestProcessOperation_UnknownVariantSkipped(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 10))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(), []dto.StockOperationItem{
		{ProductID: "prod-1", VariantID: "ghost", Quantity: 1},
		{ProductID: "prod-1", VariantID: "var-1", Quantity: 1},
	}, model.MovementIn, "restock")
	require.NoError(t, err)

	require.Len(t, repo.applied, 1, "unknown variant must be skipped, known one processed")
	assert.Equal(t, 11, repo.applied[0].stock)
}

func TestProcessOperation_StorageErrorAbortsBatch(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3),
		fixtureVariant("var-1", 10),
		fixtureVariant("var-2", 10))
	repo.failOn = "var-1"
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	err := uc.ProcessOperation(context.Background(), []dto.StockOperationItem{
		{ProductID: "prod-1", VariantID: "var-1", Quantity: 1},
		{ProductID: "prod-1", VariantID: "var-2", Quantity: 1},
	}, model.MovementIn, "restock")
	require.Error(t, err)
	assert.Empty(t, repo.applied, "no later item may be applied after a storage failure")
}

func TestProcessOperation_UnknownKindRejected(t *testing.T) {
	uc := NewInventoryUseCase(newMockInventoryRepo(), "en", logger.NewNop())
	err := uc.ProcessOperation(context.Background(), nil, "TRANSFER", "x")
	assert.ErrorIs(t, err, inventory.ErrUnknownKind)
}

func TestProcessOperation_SequenceOfOperations(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 0))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())
	ctx := context.Background()

	steps := []struct {
		kind  string
		qty   int
		stock int
	}{
		{model.MovementIn, 10, 10},
		{model.MovementOut, 4, 6},
		{model.MovementAdjust, -6, 0},
		{model.MovementIn, 2, 2},
	}
	for _, s := range steps {
		err := uc.ProcessOperation(ctx,
			[]dto.StockOperationItem{{ProductID: "prod-1", VariantID: "var-1", Quantity: s.qty}},
			s.kind, "test")
		require.NoError(t, err)
		assert.Equal(t, s.stock, repo.variants["prod-1/var-1"].CurrentStock)
	}
}

func TestSetVariantStock_DirectSetNoMovement(t *testing.T) {
	repo := newMockInventoryRepo()
	repo.addProduct(fixtureProduct(3), fixtureVariant("var-1", 10))
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	v, err := uc.SetVariantStock(context.Background(),
		&dto.SetStockInput{ProductID: "prod-1", VariantID: "var-1", Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2, v.CurrentStock)

	require.Len(t, repo.applied, 1)
	assert.Nil(t, repo.applied[0].log, "manual correction writes no movement entry")
	require.NotNil(t, repo.applied[0].alert)
	assert.Equal(t, model.AlertLowStock, repo.applied[0].alert.Type)
}

func TestSetVariantStock_NegativeRejected(t *testing.T) {
	uc := NewInventoryUseCase(newMockInventoryRepo(), "en", logger.NewNop())
	_, err := uc.SetVariantStock(context.Background(),
		&dto.SetStockInput{ProductID: "prod-1", VariantID: "var-1", Quantity: -1})
	assert.ErrorIs(t, err, inventory.ErrNegativeQuantity)
}

func TestSetVariantStock_UnknownVariantIsNoOp(t *testing.T) {
	repo := newMockInventoryRepo()
	uc := NewInventoryUseCase(repo, "en", logger.NewNop())

	v, err := uc.SetVariantStock(context.Background(),
		&dto.SetStockInput{ProductID: "nope", VariantID: "nope", Quantity: 5})
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Empty(t, repo.applied)
}
