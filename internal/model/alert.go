package model

import "time"

const (
	AlertLowStock    = "low_stock"
	AlertOutOfStock  = "out_of_stock"
	AlertNewArrival  = "new_arrival"
	AlertPriceChange = "price_change"
)

// Alert is created by the system on stock boundaries and product changes;
// the only mutation after creation is flipping Read.
type Alert struct {
	ID          string    `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Message     string    `db:"message" json:"message"`
	ProductID   string    `db:"product_id" json:"product_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	Reference   string    `db:"reference" json:"reference"`
	Read        bool      `db:"read" json:"read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
