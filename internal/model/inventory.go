package model

import "time"

// Movement kinds. OUT entries store a negative quantity.
const (
	MovementIn     = "IN"
	MovementOut    = "OUT"
	MovementAdjust = "ADJUST"
)

// InventoryLog is an append-only audit record of a stock change.
type InventoryLog struct {
	ID           string    `db:"id" json:"id"`
	ProductID    string    `db:"product_id" json:"product_id"`
	VariantID    string    `db:"variant_id" json:"variant_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	VariantLabel string    `db:"variant_label" json:"variant_label"`
	Type         string    `db:"type" json:"type"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Reason       string    `db:"reason" json:"reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
