package dto

type AdjustInventoryInput struct {
	ProductID      int    `json:"product_id" validate:"gt=0"`
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
	// MovementType defaults to adjustment. Receipts come from the stock listener.
	MovementType string `json:"movement_type" validate:"omitempty,oneof=adjustment receipt"`
	ReferenceID  string `json:"reference_id"`
	UserID       *int   `json:"-"`
}
