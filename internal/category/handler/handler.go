package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/category"
	"github.com/fekuna/omnipos-warehouse-service/internal/category/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

var _ pb.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.CategoryResponse, error) {
	cat, err := h.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: req.Name})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			h.logger.Error("failed to create category", zap.Error(err))
		}
		return nil, apperr.ToStatus(err)
	}

	return &pb.CategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *pb.GetCategoryRequest) (*pb.CategoryResponse, error) {
	cat, err := h.uc.GetCategory(ctx, req.Id)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	return &pb.CategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *pb.ListCategoriesRequest) (*pb.ListCategoriesResponse, error) {
	cats, count, err := h.uc.ListCategories(ctx, &dto.CategoryFilters{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	protoCats := make([]*pb.Category, len(cats))
	for i := range cats {
		protoCats[i] = MapModelToProto(&cats[i])
	}

	return &pb.ListCategoriesResponse{
		Categories: protoCats,
		Total:      count,
	}, nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.CategoryResponse, error) {
	cat, err := h.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID:   req.Id,
		Name: req.Name,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	return &pb.CategoryResponse{Category: MapModelToProto(cat)}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *pb.DeleteCategoryRequest) (*pb.Empty, error) {
	if err := h.uc.DeleteCategory(ctx, req.Id); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &pb.Empty{}, nil
}

func MapModelToProto(m *model.Category) *pb.Category {
	if m == nil {
		return nil
	}
	return &pb.Category{
		Id:   m.ID,
		Name: m.Name,
	}
}
