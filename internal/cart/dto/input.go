package dto

type AddToCartInput struct {
	ProductID int `json:"product_id" validate:"gt=0"`
	Quantity  int `json:"quantity" validate:"gt=0"`
}

// UpdateCartItemInput removes the line when Quantity <= 0.
type UpdateCartItemInput struct {
	ProductID int `json:"product_id" validate:"gt=0"`
	Quantity  int `json:"quantity"`
}
