package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	products product.Repository
	catalog  product.UseCase
	stock    *guard.Stock
	events   inventory.EventPublisher
	logger   logger.ZapLogger
}

// NewInventoryUseCase wires stock adjustments. events may be nil.
func NewInventoryUseCase(
	repo inventory.Repository,
	products product.Repository,
	catalog product.UseCase,
	stock *guard.Stock,
	events inventory.EventPublisher,
	log logger.ZapLogger,
) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		products: products,
		catalog:  catalog,
		stock:    stock,
		events:   events,
		logger:   log,
	}
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Product, *model.StockMovement, error) {
	if err := validation.Struct(input); err != nil {
		return nil, nil, err
	}
	if input.QuantityChange == 0 {
		return nil, nil, apperr.Validation("quantity_change must not be zero")
	}
	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementTypeAdjustment
	}

	var movement *model.StockMovement
	err := uc.stock.Do(func() error {
		changes, err := uc.products.ApplyStockDeltas(ctx, []model.StockDelta{
			{ProductID: input.ProductID, Change: input.QuantityChange},
		})
		if err != nil {
			return err
		}

		change := changes[0]
		movement = &model.StockMovement{
			ProductID:      change.ProductID,
			MovementType:   movementType,
			QuantityChange: change.Change,
			QuantityBefore: change.Before,
			QuantityAfter:  change.After,
			Notes:          strings.TrimSpace(input.Reason),
			CreatedBy:      input.UserID,
			CreatedAt:      time.Now(),
		}
		if input.ReferenceID != "" {
			ref := input.ReferenceID
			movement.ReferenceID = &ref
		}
		// The stock change already happened; a failed log entry must not hide it.
		if err := uc.repo.LogMovements(ctx, []*model.StockMovement{movement}); err != nil {
			uc.logger.Error("failed to log stock movement", zap.Int("product_id", change.ProductID), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.Int("product_id", movement.ProductID),
		zap.String("movement_type", movement.MovementType),
		zap.Int("quantity_change", movement.QuantityChange),
		zap.Int("quantity_after", movement.QuantityAfter),
	)
	uc.publish(ctx, movement)

	p, err := uc.catalog.GetProduct(ctx, movement.ProductID)
	if err != nil {
		return nil, nil, err
	}
	return p, movement, nil
}

func (uc *inventoryUseCase) publish(ctx context.Context, m *model.StockMovement) {
	if uc.events == nil {
		return
	}
	payload := model.StockAdjustedPayload{
		ProductID:      m.ProductID,
		MovementType:   m.MovementType,
		QuantityChange: m.QuantityChange,
		QuantityAfter:  m.QuantityAfter,
	}
	if m.ReferenceID != nil {
		payload.ReferenceID = *m.ReferenceID
	}
	event := model.NewEvent(model.EventTypeStockAdjusted, payload)
	if err := uc.events.Publish(ctx, strconv.Itoa(m.ProductID), event); err != nil {
		uc.logger.Warn("failed to publish stock adjusted event", zap.Int("product_id", m.ProductID), zap.Error(err))
	}
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	if filters == nil {
		filters = &dto.MovementFilters{}
	}
	if err := validation.Struct(filters); err != nil {
		return nil, 0, err
	}
	movements, count, err := uc.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Internal("list movements", err)
	}
	return movements, count, nil
}
