package model

import "time"

const (
	MovementTypeAdjustment = "adjustment"
	MovementTypeWithdrawal = "withdrawal"
	MovementTypeReceipt    = "receipt"
)

// StockDelta is a requested change to one product's stock.
type StockDelta struct {
	ProductID int
	Change    int
}

// StockChange is the applied outcome of a StockDelta.
type StockChange struct {
	ProductID int
	Change    int
	Before    int
	After     int
}

type StockMovement struct {
	ID             int       `json:"id"`
	ProductID      int       `json:"product_id"`
	MovementType   string    `json:"movement_type"`
	QuantityChange int       `json:"quantity_change"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	ReferenceID    *string   `json:"reference_id,omitempty"`
	Notes          string    `json:"notes"`
	CreatedBy      *int      `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
