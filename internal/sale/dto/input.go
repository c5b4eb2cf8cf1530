package dto

import "github.com/shopspring/decimal"

type SaleLineInput struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type RegisterSaleInput struct {
	Items           []SaleLineInput  `json:"items"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	PaymentMethod   string           `json:"payment_method"`
	CashReceived    *decimal.Decimal `json:"cash_received,omitempty"`
	CustomerName    string           `json:"customer_name"`
}
