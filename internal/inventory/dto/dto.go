package dto

type MovementFilters struct {
	ProductID    int    `json:"product_id"`
	MovementType string `json:"movement_type" validate:"omitempty,oneof=adjustment withdrawal receipt"`
	Page         int    `json:"page" validate:"gte=0"`
	PageSize     int    `json:"page_size" validate:"gte=0"`
}
