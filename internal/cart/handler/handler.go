package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productHandler "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	"go.uber.org/zap"
)

var _ pb.CartServiceServer = (*CartHandler)(nil)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CartHandler) GetCart(ctx context.Context, _ *pb.Empty) (*pb.CartResponse, error) {
	return h.respond(h.uc.GetCart(ctx))
}

func (h *CartHandler) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.CartResponse, error) {
	return h.respond(h.uc.AddToCart(ctx, &dto.AddToCartInput{
		ProductID: req.ProductId,
		Quantity:  req.Quantity,
	}))
}

func (h *CartHandler) RemoveFromCart(ctx context.Context, req *pb.RemoveFromCartRequest) (*pb.CartResponse, error) {
	return h.respond(h.uc.RemoveFromCart(ctx, req.ProductId))
}

func (h *CartHandler) UpdateCartItemQuantity(ctx context.Context, req *pb.UpdateCartItemRequest) (*pb.CartResponse, error) {
	return h.respond(h.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{
		ProductID: req.ProductId,
		Quantity:  req.Quantity,
	}))
}

func (h *CartHandler) ClearCart(ctx context.Context, _ *pb.Empty) (*pb.CartResponse, error) {
	return h.respond(h.uc.ClearCart(ctx))
}

func (h *CartHandler) respond(c *model.Cart, err error) (*pb.CartResponse, error) {
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			h.logger.Error("cart operation failed", zap.Error(err))
		}
		return nil, apperr.ToStatus(err)
	}
	return &pb.CartResponse{Cart: MapCartToProto(c)}, nil
}

func MapCartToProto(c *model.Cart) *pb.Cart {
	lines := make([]*pb.CartLine, len(c.Lines))
	for i := range c.Lines {
		l := &c.Lines[i]
		lines[i] = &pb.CartLine{
			ProductId:    l.ProductID,
			Quantity:     l.Quantity,
			Product:      productHandler.MapProductToProto(l.Product),
			ExceedsStock: l.ExceedsStock(),
		}
	}
	return &pb.Cart{
		Lines:       lines,
		TotalItems:  c.TotalItems(),
		Committable: c.Committable(),
	}
}
