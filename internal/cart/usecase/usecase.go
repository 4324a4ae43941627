package usecase

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"go.uber.org/zap"
)

type cartUseCase struct {
	repo    cart.Repository
	catalog product.UseCase
	stock   *guard.Stock
	logger  logger.ZapLogger
}

func NewCartUseCase(repo cart.Repository, catalog product.UseCase, stock *guard.Stock, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		repo:    repo,
		catalog: catalog,
		stock:   stock,
		logger:  log,
	}
}

// GetCart joins each line with the live product. Lines whose product was
// deleted keep a nil Product until the draft is confirmed or edited.
func (uc *cartUseCase) GetCart(ctx context.Context) (*model.Cart, error) {
	items, err := uc.repo.Items(ctx)
	if err != nil {
		return nil, apperr.Internal("load cart", err)
	}

	c := &model.Cart{Lines: make([]model.CartLine, 0, len(items))}
	for _, item := range items {
		line := model.CartLine{CartItem: item}
		p, err := uc.catalog.GetProduct(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Product = p
		case !apperr.IsNotFound(err):
			return nil, err
		}
		c.Lines = append(c.Lines, line)
	}
	return c, nil
}

func (uc *cartUseCase) AddToCart(ctx context.Context, input *dto.AddToCartInput) (*model.Cart, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	err := uc.edit(ctx, func(items []model.CartItem) ([]model.CartItem, error) {
		p, err := uc.catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}

		i := indexOf(items, input.ProductID)
		inCart := 0
		if i >= 0 {
			inCart = items[i].Quantity
		}
		if inCart+input.Quantity > p.Stock {
			if inCart > 0 {
				return nil, apperr.Conflictf("cannot add %d of %s: %d in stock and %d already in the cart",
					input.Quantity, p.Name, p.Stock, inCart)
			}
			return nil, apperr.Conflictf("cannot add %d of %s: only %d in stock", input.Quantity, p.Name, p.Stock)
		}

		if i >= 0 {
			items[i].Quantity += input.Quantity
			return items, nil
		}
		return append(items, model.CartItem{ProductID: input.ProductID, Quantity: input.Quantity}), nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("cart item added", zap.Int("product_id", input.ProductID), zap.Int("quantity", input.Quantity))
	return uc.GetCart(ctx)
}

func (uc *cartUseCase) RemoveFromCart(ctx context.Context, productID int) (*model.Cart, error) {
	err := uc.edit(ctx, func(items []model.CartItem) ([]model.CartItem, error) {
		i := indexOf(items, productID)
		if i < 0 {
			return nil, apperr.NotFoundf("product %d is not in the cart", productID)
		}
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("cart item removed", zap.Int("product_id", productID))
	return uc.GetCart(ctx)
}

func (uc *cartUseCase) UpdateCartItemQuantity(ctx context.Context, input *dto.UpdateCartItemInput) (*model.Cart, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return uc.RemoveFromCart(ctx, input.ProductID)
	}

	err := uc.edit(ctx, func(items []model.CartItem) ([]model.CartItem, error) {
		i := indexOf(items, input.ProductID)
		if i < 0 {
			return nil, apperr.NotFoundf("product %d is not in the cart", input.ProductID)
		}
		p, err := uc.catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if input.Quantity > p.Stock {
			return nil, apperr.Conflictf("cannot set %s to %d: only %d in stock", p.Name, input.Quantity, p.Stock)
		}
		items[i].Quantity = input.Quantity
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("cart item updated", zap.Int("product_id", input.ProductID), zap.Int("quantity", input.Quantity))
	return uc.GetCart(ctx)
}

func (uc *cartUseCase) ClearCart(ctx context.Context) (*model.Cart, error) {
	err := uc.stock.Do(func() error {
		if err := uc.repo.Clear(ctx); err != nil {
			return apperr.Internal("clear cart", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &model.Cart{Lines: []model.CartLine{}}, nil
}

// edit loads the items, applies fn and saves the result under the stock lock.
// Nothing is saved when fn fails.
func (uc *cartUseCase) edit(ctx context.Context, fn func(items []model.CartItem) ([]model.CartItem, error)) error {
	return uc.stock.Do(func() error {
		items, err := uc.repo.Items(ctx)
		if err != nil {
			return apperr.Internal("load cart", err)
		}
		items, err = fn(items)
		if err != nil {
			return err
		}
		if err := uc.repo.Save(ctx, items); err != nil {
			return apperr.Internal("save cart", err)
		}
		return nil
	})
}

func indexOf(items []model.CartItem, productID int) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
