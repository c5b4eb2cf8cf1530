package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	CategoryID        string          `db:"category_id" json:"category_id"`
	Reference         string          `db:"reference" json:"reference"`
	Name              string          `db:"name" json:"name"`
	Brand             string          `db:"brand" json:"brand"`
	CostPrice         decimal.Decimal `db:"cost_price" json:"cost_price"`
	SalePrice         decimal.Decimal `db:"sale_price" json:"sale_price"`
	MinStockThreshold int             `db:"min_stock_threshold" json:"min_stock_threshold"`
	Variants          []ProductVariant `db:"-" json:"variants"`
	Category          *Category        `db:"-" json:"category,omitempty"` // joined data
}

// ProductVariant is the unit at which stock is tracked: one size/color
// combination of a product.
type ProductVariant struct {
	ID           string `db:"id" json:"id"`
	ProductID    string `db:"product_id" json:"product_id"`
	Size         string `db:"size" json:"size"`
	Color        string `db:"color" json:"color"`
	Barcode      string `db:"barcode" json:"barcode"`
	SKU          string `db:"sku" json:"sku"`
	CurrentStock int    `db:"current_stock" json:"current_stock"`
}

// Label is the human descriptor used on movement logs and alerts.
func (v *ProductVariant) Label() string {
	return v.Color + " " + v.Size
}

func (p *Product) TotalStock() int {
	total := 0
	for i := range p.Variants {
		total += p.Variants[i].CurrentStock
	}
	return total
}
