package handler

import (
	"context"
	"strings"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ pb.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	p, err := h.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryId,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Price:       price,
	})
	if err != nil {
		return nil, h.fail("failed to create product", err)
	}

	return &pb.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to get product", err)
	}

	return &pb.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.ProductResponse, error) {
	input := &dto.UpdateProductInput{
		ID:          req.Id,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryId,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, apperr.ToStatus(err)
		}
		input.Price = &price
	}

	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		return nil, h.fail("failed to update product", err)
	}

	return &pb.ProductResponse{Product: MapProductToProto(p)}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*pb.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.Id); err != nil {
		return nil, h.fail("failed to delete product", err)
	}
	return &pb.Empty{}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	products, count, err := h.uc.ListProducts(ctx, &dto.ProductFilters{
		Search:    req.Search,
		Category:  req.Category,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		return nil, h.fail("failed to list products", err)
	}

	return &pb.ListProductsResponse{
		Products: MapProductsToProto(products),
		Total:    count,
	}, nil
}

func (h *ProductHandler) SearchProducts(ctx context.Context, req *pb.SearchProductsRequest) (*pb.ListProductsResponse, error) {
	products, err := h.uc.SearchProducts(ctx, req.Query)
	if err != nil {
		return nil, h.fail("failed to search products", err)
	}
	return listResponse(products), nil
}

func (h *ProductHandler) FilterByCategory(ctx context.Context, req *pb.FilterByCategoryRequest) (*pb.ListProductsResponse, error) {
	products, err := h.uc.FilterByCategory(ctx, req.Category)
	if err != nil {
		return nil, h.fail("failed to filter products", err)
	}
	return listResponse(products), nil
}

func (h *ProductHandler) ListLowStock(ctx context.Context, req *pb.ListLowStockRequest) (*pb.ListProductsResponse, error) {
	products, err := h.uc.ListLowStock(ctx, &dto.ProductFilters{
		Search:   req.Search,
		Category: req.Category,
	})
	if err != nil {
		return nil, h.fail("failed to list low stock products", err)
	}
	return listResponse(products), nil
}

func (h *ProductHandler) fail(msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.logger.Error(msg, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, apperr.Validation("price is required")
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validationf("price %q is not a number", s)
	}
	return price, nil
}

func listResponse(products []model.Product) *pb.ListProductsResponse {
	return &pb.ListProductsResponse{
		Products: MapProductsToProto(products),
		Total:    len(products),
	}
}

func MapProductsToProto(products []model.Product) []*pb.Product {
	protos := make([]*pb.Product, len(products))
	for i := range products {
		protos[i] = MapProductToProto(&products[i])
	}
	return protos
}

func MapProductToProto(p *model.Product) *pb.Product {
	if p == nil {
		return nil
	}
	return &pb.Product{
		Id:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryId:   p.CategoryID,
		CategoryName: p.CategoryName(),
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Price:        p.Price.StringFixed(2),
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
