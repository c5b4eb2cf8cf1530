package dto

import "time"

type MovementFilters struct {
	ProductID string     `json:"product_id"`
	VariantID string     `json:"variant_id"`
	Type      string     `json:"type"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}
