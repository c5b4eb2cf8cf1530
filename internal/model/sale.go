package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID            string           `db:"id" json:"id"`
	Subtotal      decimal.Decimal  `db:"subtotal" json:"subtotal"`
	Discount      decimal.Decimal  `db:"discount" json:"discount"`
	Total         decimal.Decimal  `db:"total" json:"total"`
	PaymentMethod string           `db:"payment_method" json:"payment_method"`
	CashReceived  *decimal.Decimal `db:"cash_received" json:"cash_received,omitempty"`
	Change        *decimal.Decimal `db:"change" json:"change,omitempty"`
	CustomerName  *string          `db:"customer_name" json:"customer_name,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	Items         []SaleItem       `db:"-" json:"items"`
}

// SaleItem snapshots the unit price at checkout time; later product price
// changes do not rewrite past sales.
type SaleItem struct {
	ID           string          `db:"id" json:"id"`
	SaleID       string          `db:"sale_id" json:"sale_id"`
	ProductID    string          `db:"product_id" json:"product_id"`
	ProductName  string          `db:"product_name" json:"product_name"`
	VariantID    string          `db:"variant_id" json:"variant_id"`
	VariantLabel string          `db:"variant_label" json:"variant_label"`
	SKU          string          `db:"sku" json:"sku"`
	Quantity     int             `db:"quantity" json:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
}
