package dto

import "github.com/shopspring/decimal"

// Summary is recomputed from the store on every request; nothing here is
// cached or incrementally maintained.
type Summary struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockUnits int             `json:"total_stock_units"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	UnreadAlerts    int             `json:"unread_alerts"`
	TodaySales      int             `json:"today_sales"`
	TodayRevenue    decimal.Decimal `json:"today_revenue"`
}
