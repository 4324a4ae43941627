package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productHandler "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	"go.uber.org/zap"
)

var _ pb.InventoryServiceServer = (*InventoryHandler)(nil)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) AdjustInventory(ctx context.Context, req *pb.AdjustInventoryRequest) (*pb.AdjustInventoryResponse, error) {
	p, movement, err := h.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
		ProductID:      req.ProductId,
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
		UserID:         auth.UserID(ctx),
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			h.logger.Error("failed to adjust inventory", zap.Int("product_id", req.ProductId), zap.Error(err))
		}
		return nil, apperr.ToStatus(err)
	}

	return &pb.AdjustInventoryResponse{
		Product:  productHandler.MapProductToProto(p),
		Movement: mapMovementToProto(movement),
	}, nil
}

func (h *InventoryHandler) ListInventoryMovements(ctx context.Context, req *pb.ListMovementsRequest) (*pb.ListMovementsResponse, error) {
	movements, count, err := h.uc.ListMovements(ctx, &dto.MovementFilters{
		ProductID:    req.ProductId,
		MovementType: req.MovementType,
		Page:         req.Page,
		PageSize:     req.PageSize,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	protos := make([]*pb.StockMovement, len(movements))
	for i := range movements {
		protos[i] = mapMovementToProto(&movements[i])
	}

	return &pb.ListMovementsResponse{
		Movements: protos,
		Total:     count,
	}, nil
}

func mapMovementToProto(m *model.StockMovement) *pb.StockMovement {
	if m == nil {
		return nil
	}
	out := &pb.StockMovement{
		Id:             m.ID,
		ProductId:      m.ProductID,
		MovementType:   m.MovementType,
		QuantityChange: m.QuantityChange,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
	if m.ReferenceID != nil {
		out.ReferenceId = *m.ReferenceID
	}
	if m.CreatedBy != nil {
		out.CreatedBy = *m.CreatedBy
	}
	return out
}
