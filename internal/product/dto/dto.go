package dto

// AllCategories is the category filter value that disables filtering.
const AllCategories = "all"

const (
	SortByName      = "name"
	SortByStock     = "stock"
	SortByCategory  = "category"
	SortByCreatedAt = "created_at"
)

type ProductFilters struct {
	Search     string `json:"search"`   // name or description, case-insensitive
	Category   string `json:"category"` // exact category name, "" or "all" for every category
	CategoryID int    `json:"-"`        // resolved from Category by the usecase
	LowStock   bool   `json:"-"`
	SortBy     string `json:"sort_by" validate:"omitempty,oneof=name stock category created_at"`
	SortOrder  string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page       int    `json:"page" validate:"gte=0"`
	PageSize   int    `json:"page_size" validate:"gte=0"`
}
