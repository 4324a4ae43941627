package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeStockReceived       = "StockReceived"
	EventTypeStockAdjusted       = "StockAdjusted"
	EventTypeWithdrawalConfirmed = "WithdrawalConfirmed"
)

// Event is the envelope written to and read from the broker.
type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

type StockAdjustedPayload struct {
	ProductID      int    `json:"product_id"`
	MovementType   string `json:"movement_type"`
	QuantityChange int    `json:"quantity_change"`
	QuantityAfter  int    `json:"quantity_after"`
	ReferenceID    string `json:"reference_id,omitempty"`
}

type WithdrawalConfirmedPayload struct {
	WithdrawalID      int              `json:"withdrawal_id"`
	Items             []StockDeltaItem `json:"items"`
	TotalItems        int              `json:"total_items"`
	WithdrawerName    string           `json:"withdrawer_name"`
	WithdrawerSection string           `json:"withdrawer_section"`
}

type StockDeltaItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
