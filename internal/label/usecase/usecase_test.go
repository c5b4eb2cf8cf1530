package usecase

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokk/inventory-service/internal/label"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product/dto"
	"github.com/stokk/inventory-service/pkg/logger"
)

type mockProductRepo struct {
	byID map[string]*model.Product
}

func (m *mockProductRepo) Create(_ context.Context, _ *model.Product) error { return nil }
func (m *mockProductRepo) Update(_ context.Context, _ *model.Product) error { return nil }
func (m *mockProductRepo) Delete(_ context.Context, _ string) error         { return nil }
func (m *mockProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	return m.byID[id], nil
}
func (m *mockProductRepo) FindAll(_ context.Context, _ *dto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}
func (m *mockProductRepo) FindByBarcode(_ context.Context, code string) (*model.Product, *model.ProductVariant, error) {
	for _, p := range m.byID {
		for i := range p.Variants {
			if p.Variants[i].Barcode == code {
				return p, &p.Variants[i], nil
			}
		}
	}
	return nil, nil, nil
}

func labelFixture() *mockProductRepo {
	p := &model.Product{
		Reference: "VES-0042",
		Name:      "Vestido Midi Estampado",
		Brand:     "Aura",
		SalePrice: decimal.RequireFromString("129.90"),
	}
	p.ID = "prod-1"
	p.Variants = []model.ProductVariant{
		{ID: "var-1", ProductID: "prod-1", Size: "P", Color: "Azul", SKU: "VES-AZU-P", Barcode: "7891234567001"},
		{ID: "var-2", ProductID: "prod-1", Size: "M", Color: "Azul", SKU: "VES-AZU-M", Barcode: "7891234567002"},
	}
	return &mockProductRepo{byID: map[string]*model.Product{"prod-1": p}}
}

func TestBarcodePNG(t *testing.T) {
	uc := NewLabelUseCase(labelFixture(), logger.NewNop())

	data, err := uc.BarcodePNG(context.Background(), "7891234567001")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a decodable PNG")
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestBarcodePNG_UnknownCode(t *testing.T) {
	uc := NewLabelUseCase(labelFixture(), logger.NewNop())
	_, err := uc.BarcodePNG(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, label.ErrUnknownBarcode)
}

func TestLabelSheetPDF(t *testing.T) {
	uc := NewLabelUseCase(labelFixture(), logger.NewNop())

	data, err := uc.LabelSheetPDF(context.Background(), []string{"prod-1", "ghost"})
	require.NoError(t, err, "unknown ids are skipped, not fatal")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestLabelSheetPDF_AccentedNames(t *testing.T) {
	p := &model.Product{
		Reference: "CAL-0099",
		Name:      "Calça Vestido Médio Às Avessas Estampada Exclusiva",
		Brand:     "Aura",
		SalePrice: decimal.RequireFromString("89.90"),
	}
	p.ID = "prod-2"
	p.Variants = []model.ProductVariant{
		{ID: "var-1", ProductID: "prod-2", Size: "G", Color: "Marrom Café", SKU: "CAL-MAR-G", Barcode: "7891234567003"},
	}
	repo := &mockProductRepo{byID: map[string]*model.Product{"prod-2": p}}
	uc := NewLabelUseCase(repo, logger.NewNop())

	data, err := uc.LabelSheetPDF(context.Background(), []string{"prod-2"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestLabelSheetGeometry_ThreePerRow(t *testing.T) {
	const pageWidth = 210.0 // A4 portrait, mm

	// Walk the same wrap rule the layout loop uses.
	perRow := 0
	for x := pageMargin; x+labelWidth <= pageWidth-pageMargin; x += labelWidth + labelGap {
		perRow++
	}
	assert.Equal(t, 3, perRow)
}

func TestLabelSheetPDF_NoProducts(t *testing.T) {
	uc := NewLabelUseCase(labelFixture(), logger.NewNop())
	_, err := uc.LabelSheetPDF(context.Background(), []string{"ghost"})
	assert.ErrorIs(t, err, label.ErrNoProducts)
}
