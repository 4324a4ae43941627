package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productHandler "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/dto"
	"go.uber.org/zap"
)

var _ pb.WithdrawalServiceServer = (*WithdrawalHandler)(nil)

type WithdrawalHandler struct {
	uc     withdrawal.UseCase
	logger logger.ZapLogger
}

func NewWithdrawalHandler(uc withdrawal.UseCase, log logger.ZapLogger) *WithdrawalHandler {
	return &WithdrawalHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *WithdrawalHandler) ConfirmWithdrawal(ctx context.Context, req *pb.ConfirmWithdrawalRequest) (*pb.WithdrawalResponse, error) {
	w, err := h.uc.ConfirmWithdrawal(ctx, auth.UserFromContext(ctx), &dto.ConfirmWithdrawalInput{
		WithdrawerName:    req.WithdrawerName,
		WithdrawerSection: req.WithdrawerSection,
		Notes:             req.Notes,
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			h.logger.Error("failed to confirm withdrawal", zap.Error(err))
		}
		return nil, apperr.ToStatus(err)
	}

	return &pb.WithdrawalResponse{Withdrawal: MapWithdrawalToProto(w)}, nil
}

func (h *WithdrawalHandler) GetWithdrawal(ctx context.Context, req *pb.GetWithdrawalRequest) (*pb.WithdrawalResponse, error) {
	w, err := h.uc.GetWithdrawal(ctx, req.Id)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &pb.WithdrawalResponse{Withdrawal: MapWithdrawalToProto(w)}, nil
}

func (h *WithdrawalHandler) ListWithdrawals(ctx context.Context, _ *pb.Empty) (*pb.ListWithdrawalsResponse, error) {
	ledger, err := h.uc.ListWithdrawals(ctx)
	if err != nil {
		h.logger.Error("failed to list withdrawals", zap.Error(err))
		return nil, apperr.ToStatus(err)
	}
	return &pb.ListWithdrawalsResponse{Withdrawals: MapWithdrawalsToProto(ledger)}, nil
}

func MapWithdrawalsToProto(ledger []model.Withdrawal) []*pb.Withdrawal {
	out := make([]*pb.Withdrawal, len(ledger))
	for i := range ledger {
		out[i] = MapWithdrawalToProto(&ledger[i])
	}
	return out
}

func MapWithdrawalToProto(w *model.Withdrawal) *pb.Withdrawal {
	if w == nil {
		return nil
	}
	items := make([]*pb.WithdrawalItem, len(w.Items))
	for i := range w.Items {
		items[i] = &pb.WithdrawalItem{
			ProductId: w.Items[i].ProductID,
			Quantity:  w.Items[i].Quantity,
			Product:   productHandler.MapProductToProto(&w.Items[i].Product),
		}
	}
	return &pb.Withdrawal{
		Id:                w.ID,
		Items:             items,
		TotalItems:        w.TotalItems,
		UserId:            w.UserID,
		UserName:          w.UserName,
		UserSection:       w.UserSection,
		WithdrawerName:    w.WithdrawerName,
		WithdrawerSection: w.WithdrawerSection,
		Notes:             w.Notes,
		CreatedAt:         w.CreatedAt,
	}
}
