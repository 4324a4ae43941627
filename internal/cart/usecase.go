package cart

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/cart/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type UseCase interface {
	GetCart(ctx context.Context) (*model.Cart, error)
	AddToCart(ctx context.Context, input *dto.AddToCartInput) (*model.Cart, error)
	RemoveFromCart(ctx context.Context, productID int) (*model.Cart, error)
	UpdateCartItemQuantity(ctx context.Context, input *dto.UpdateCartItemInput) (*model.Cart, error)
	ClearCart(ctx context.Context) (*model.Cart, error)
}
