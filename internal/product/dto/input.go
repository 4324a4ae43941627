package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	CategoryID  int             `json:"category_id" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	MinStock    int             `json:"min_stock" validate:"gte=0"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductInput merges the non-nil fields into the stored product.
type UpdateProductInput struct {
	ID          int
	Name        *string
	Description *string
	CategoryID  *int
	Stock       *int
	MinStock    *int
	Price       *decimal.Decimal
}
