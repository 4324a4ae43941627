package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// InventoryListener turns StockReceived events into receipt movements.
type InventoryListener struct {
	consumer   MessageReader
	uc         inventory.UseCase
	logger     logger.ZapLogger
	retryDelay time.Duration
}

func NewInventoryListener(consumer MessageReader, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer:   consumer,
		uc:         uc,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Start blocks until ctx is done.
func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Inventory Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Inventory Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryDelay):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type StockReceivedEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Payload   StockReceivedPayload `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
}

type StockReceivedPayload struct {
	ProductID   int    `json:"product_id"`
	Quantity    int    `json:"quantity"`
	ReferenceID string `json:"reference_id"`
	Notes       string `json:"notes"`
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event StockReceivedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != model.EventTypeStockReceived {
		return
	}
	if event.Payload.Quantity <= 0 {
		l.logger.Warn("Skipping StockReceived event without a positive quantity",
			zap.String("event_id", event.EventID),
			zap.Int("quantity", event.Payload.Quantity),
		)
		return
	}

	l.logger.Info("Processing StockReceived event",
		zap.String("event_id", event.EventID),
		zap.Int("product_id", event.Payload.ProductID),
	)

	reference := event.Payload.ReferenceID
	if reference == "" {
		reference = event.EventID
	}
	_, _, err := l.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
		ProductID:      event.Payload.ProductID,
		QuantityChange: event.Payload.Quantity,
		Reason:         event.Payload.Notes,
		MovementType:   model.MovementTypeReceipt,
		ReferenceID:    reference,
	})
	if err != nil {
		l.logger.Error("Failed to apply stock receipt",
			zap.String("event_id", event.EventID),
			zap.Int("product_id", event.Payload.ProductID),
			zap.Error(err),
		)
	}
}
