package inventory

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

// Repository is the stock movement log.
type Repository interface {
	// LogMovements assigns ids in order and appends every movement.
	LogMovements(ctx context.Context, movements []*model.StockMovement) error
	// ListMovements returns matching movements newest first with the total count.
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}

// EventPublisher is satisfied by broker.KafkaProducer.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}
