package dto

import "github.com/shopspring/decimal"

// VariantDraft is one (size, color) cell of the product grid.
type VariantDraft struct {
	Size         string `json:"size"`
	Color        string `json:"color"`
	InitialStock int    `json:"initial_stock"`
}

type CreateProductInput struct {
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	CategoryID        string          `json:"category_id"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	MinStockThreshold int             `json:"min_stock_threshold"`
	Variants          []VariantDraft  `json:"variants"`
}

type UpdateProductInput struct {
	ID                string          `json:"-"`
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	CategoryID        string          `json:"category_id"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	MinStockThreshold int             `json:"min_stock_threshold"`
}
