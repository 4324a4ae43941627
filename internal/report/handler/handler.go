package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	productHandler "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/report"
	"github.com/fekuna/omnipos-warehouse-service/internal/report/dto"
	withdrawalHandler "github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/handler"
	"go.uber.org/zap"
)

var _ pb.ReportServiceServer = (*ReportHandler)(nil)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ReportHandler) GetDashboard(ctx context.Context, _ *pb.Empty) (*pb.DashboardResponse, error) {
	d, err := h.uc.Dashboard(ctx)
	if err != nil {
		return nil, h.fail("failed to build dashboard", err)
	}

	top := make([]*pb.ProductQuantity, len(d.TopWithdrawnProducts))
	for i, p := range d.TopWithdrawnProducts {
		top[i] = &pb.ProductQuantity{ProductId: p.ProductID, Name: p.Name, Quantity: p.Quantity}
	}
	cats := make([]*pb.CategoryCount, len(d.TopCategories))
	for i, c := range d.TopCategories {
		cats[i] = &pb.CategoryCount{Category: c.Category, Count: c.Count}
	}

	return &pb.DashboardResponse{
		TotalProducts:        d.TotalProducts,
		LowStockProducts:     d.LowStockProducts,
		TotalCategories:      d.TotalCategories,
		TotalWithdrawals:     d.TotalWithdrawals,
		TopWithdrawnProducts: top,
		TopCategories:        cats,
		RecentProducts:       productHandler.MapProductsToProto(d.RecentProducts),
		RecentWithdrawals:    withdrawalHandler.MapWithdrawalsToProto(d.RecentWithdrawals),
	}, nil
}

func (h *ReportHandler) ExportLowStock(ctx context.Context, req *pb.ExportLowStockRequest) (*pb.ExportResponse, error) {
	export, err := h.uc.ExportLowStock(ctx, &productDto.ProductFilters{
		Search:   req.Search,
		Category: req.Category,
	})
	if err != nil {
		return nil, h.fail("failed to export low stock products", err)
	}
	return mapExportToProto(export), nil
}

func (h *ReportHandler) ExportWithdrawal(ctx context.Context, req *pb.ExportWithdrawalRequest) (*pb.ExportResponse, error) {
	export, err := h.uc.ExportWithdrawal(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to export withdrawal", err)
	}
	return mapExportToProto(export), nil
}

func (h *ReportHandler) fail(msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.logger.Error(msg, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func mapExportToProto(e *dto.Export) *pb.ExportResponse {
	return &pb.ExportResponse{
		Filename:    e.Filename,
		ContentType: e.ContentType,
		Content:     e.Content,
	}
}
