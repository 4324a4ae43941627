package withdrawal

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

// Repository is the withdrawal ledger. Records are immutable once created.
type Repository interface {
	// Create assigns the next id and prepends the record.
	Create(ctx context.Context, w *model.Withdrawal) error
	FindByID(ctx context.Context, id int) (*model.Withdrawal, error)
	// FindAll returns the ledger newest first.
	FindAll(ctx context.Context) ([]model.Withdrawal, error)
}

// EventPublisher is satisfied by broker.KafkaProducer.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}
