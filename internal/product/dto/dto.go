package dto

type ProductFilters struct {
	CategoryID  string `json:"category_id"`
	SearchQuery string `json:"search_query"`
	SortBy      string `json:"sort_by"`
	SortOrder   string `json:"sort_order"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}
