package dto

// StockOperationItem is one line of a batch stock operation. Quantity is
// interpreted per kind: positive amount for IN/OUT, signed delta for ADJUST.
type StockOperationItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type SetStockInput struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}
