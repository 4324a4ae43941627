package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart/repository"
	categoryRepo "github.com/fekuna/omnipos-warehouse-service/internal/category/repository"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	productDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	productRepo "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	productUseCase "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc       cart.UseCase
	catalog  product.UseCase
	products *productRepo.MemoryRepository
	widget   *model.Product
	gadget   *model.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	cats := categoryRepo.NewMemoryRepository()
	tools := &model.Category{Name: "Tools"}
	require.NoError(t, cats.Create(ctx, tools))

	products := productRepo.NewMemoryRepository()
	widget := &model.Product{Name: "Widget", CategoryID: tools.ID, Stock: 10, Price: decimal.NewFromInt(1)}
	gadget := &model.Product{Name: "Gadget", CategoryID: tools.ID, Stock: 3, Price: decimal.NewFromInt(1)}
	require.NoError(t, products.Create(ctx, widget))
	require.NoError(t, products.Create(ctx, gadget))

	stock := guard.New()
	catalog := productUseCase.NewProductUseCase(products, cats, stock, logger.NewNop())
	return &fixture{
		uc:       NewCartUseCase(repository.NewMemoryRepository(), catalog, stock, logger.NewNop()),
		catalog:  catalog,
		products: products,
		widget:   widget,
		gadget:   gadget,
	}
}

func TestAddToCart_MergeIsBoundedByStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.TotalItems())

	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 7})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	c, err = f.uc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity, "rejected add leaves the cart unchanged")

	c, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, c.Lines, 1, "one line per product")
	assert.Equal(t, 10, c.Lines[0].Quantity)
}

func TestAddToCart_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 0})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: 99, Quantity: 1})
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.gadget.ID, Quantity: 4})
	assert.True(t, apperr.IsConflict(err))

	c, err := f.uc.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.gadget.ID, Quantity: 1})
	require.NoError(t, err)
	c, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, f.gadget.ID, c.Lines[0].ProductID)
	assert.Equal(t, f.widget.ID, c.Lines[1].ProductID)
	assert.Equal(t, "Tools", c.Lines[1].Product.CategoryName())
	assert.Equal(t, 3, c.TotalItems())
}

func TestUpdateCartItemQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 2})
	require.NoError(t, err)

	c, err := f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.widget.ID, Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, c.Lines[0].Quantity)

	_, err = f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.widget.ID, Quantity: 11})
	assert.True(t, apperr.IsConflict(err))

	c, err = f.uc.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Lines[0].Quantity)

	_, err = f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.gadget.ID, Quantity: 1})
	assert.True(t, apperr.IsNotFound(err), "line must exist")

	c, err = f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.widget.ID, Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, c.Lines, "non-positive quantity removes the line")
}

func TestUpdateCartItemQuantity_RevalidatesAgainstCurrentStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = f.products.ApplyStockDeltas(ctx, []model.StockDelta{{ProductID: f.widget.ID, Change: -7}})
	require.NoError(t, err)

	_, err = f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.widget.ID, Quantity: 4})
	assert.True(t, apperr.IsConflict(err))

	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 2})
	assert.True(t, apperr.IsConflict(err))
}

func TestRemoveAndClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.gadget.ID, Quantity: 1})
	require.NoError(t, err)

	c, err := f.uc.RemoveFromCart(ctx, f.widget.ID)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, f.gadget.ID, c.Lines[0].ProductID)

	_, err = f.uc.RemoveFromCart(ctx, f.widget.ID)
	assert.True(t, apperr.IsNotFound(err))

	c, err = f.uc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.TotalItems())
}

func TestGetCart_DeletedProductKeepsLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.gadget.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteProduct(ctx, f.gadget.ID))

	c, err := f.uc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Nil(t, c.Lines[0].Product)
	assert.True(t, c.Lines[0].ExceedsStock())
	assert.False(t, c.Committable())
}

func TestGetCart_FlagsLinesAboveCurrentStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 5})
	require.NoError(t, err)
	_, err = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.gadget.ID, Quantity: 1})
	require.NoError(t, err)

	c, err := f.uc.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, c.Committable())

	stock := 3
	_, err = f.catalog.UpdateProduct(ctx, &productDto.UpdateProductInput{ID: f.widget.ID, Stock: &stock})
	require.NoError(t, err)

	c, err = f.uc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, c.Lines, 2)
	assert.True(t, c.Lines[0].ExceedsStock(), "5 in the cart, 3 in stock")
	assert.False(t, c.Lines[1].ExceedsStock())
	assert.False(t, c.Committable())

	c, err = f.uc.UpdateCartItemQuantity(ctx, &dto.UpdateCartItemInput{ProductID: f.widget.ID, Quantity: 3})
	require.NoError(t, err)
	assert.True(t, c.Committable())
}

func TestAddToCart_ConcurrentAddsStayWithinStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const callers = 20
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.AddToCart(ctx, &dto.AddToCartInput{ProductID: f.widget.ID, Quantity: 1})
		}(i)
	}
	wg.Wait()

	added := 0
	for _, err := range errs {
		if err == nil {
			added++
			continue
		}
		assert.True(t, apperr.IsConflict(err))
	}
	assert.Equal(t, 10, added)

	c, err := f.uc.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, c.TotalItems())
	assert.True(t, c.Committable())
}
