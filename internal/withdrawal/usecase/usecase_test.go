package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart"
	cartDto "github.com/fekuna/omnipos-warehouse-service/internal/cart/dto"
	cartRepo "github.com/fekuna/omnipos-warehouse-service/internal/cart/repository"
	cartUseCase "github.com/fekuna/omnipos-warehouse-service/internal/cart/usecase"
	categoryRepo "github.com/fekuna/omnipos-warehouse-service/internal/category/repository"
	inventoryDto "github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	inventoryRepo "github.com/fekuna/omnipos-warehouse-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	productDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	productRepo "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	productUseCase "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvents struct {
	events []model.Event
}

func (c *capturedEvents) Publish(ctx context.Context, key string, payload interface{}) error {
	c.events = append(c.events, payload.(model.Event))
	return nil
}

type fixture struct {
	uc        withdrawal.UseCase
	cart      cart.UseCase
	catalog   product.UseCase
	products  *productRepo.MemoryRepository
	movements *inventoryRepo.MemoryRepository
	stock     *guard.Stock
	events    *capturedEvents
	widget    *model.Product
	gadget    *model.Product
	user      *model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	cats := categoryRepo.NewMemoryRepository()
	tools := &model.Category{Name: "Tools"}
	require.NoError(t, cats.Create(ctx, tools))

	products := productRepo.NewMemoryRepository()
	widget := &model.Product{Name: "Widget", CategoryID: tools.ID, Stock: 10, Price: decimal.NewFromInt(2)}
	gadget := &model.Product{Name: "Gadget", CategoryID: tools.ID, Stock: 3, Price: decimal.NewFromInt(5)}
	require.NoError(t, products.Create(ctx, widget))
	require.NoError(t, products.Create(ctx, gadget))

	stock := guard.New()
	log := logger.NewNop()
	catalog := productUseCase.NewProductUseCase(products, cats, stock, log)
	carts := cartRepo.NewMemoryRepository()
	movements := inventoryRepo.NewMemoryRepository()
	events := &capturedEvents{}

	return &fixture{
		uc: NewWithdrawalUseCase(Deps{
			Repo:      repository.NewMemoryRepository(),
			Carts:     carts,
			Catalog:   catalog,
			Products:  products,
			Movements: movements,
			Stock:     stock,
			Events:    events,
			Logger:    log,
		}),
		cart:      cartUseCase.NewCartUseCase(carts, catalog, stock, log),
		catalog:   catalog,
		products:  products,
		movements: movements,
		stock:     stock,
		events:    events,
		widget:    widget,
		gadget:    gadget,
		user:      &model.User{ID: 1, Name: "Admin", Section: "Warehouse", Role: model.RoleAdmin},
	}
}

func (f *fixture) add(t *testing.T, productID, quantity int) {
	t.Helper()
	_, err := f.cart.AddToCart(context.Background(), &cartDto.AddToCartInput{ProductID: productID, Quantity: quantity})
	require.NoError(t, err)
}

func (f *fixture) stockOf(t *testing.T, id int) int {
	t.Helper()
	p, err := f.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestConfirmWithdrawal_WidgetScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, f.widget.ID, 5)
	_, err := f.cart.AddToCart(ctx, &cartDto.AddToCartInput{ProductID: f.widget.ID, Quantity: 7})
	require.True(t, apperr.IsConflict(err))

	w, err := f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{
		WithdrawerName:    "Ana",
		WithdrawerSection: "Ops",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, w.ID)
	assert.Equal(t, 5, w.TotalItems)
	assert.Equal(t, "Ana", w.WithdrawerName)
	assert.Equal(t, "Ops", w.WithdrawerSection)
	assert.Equal(t, "Admin", w.UserName)
	assert.Equal(t, "Warehouse", w.UserSection)
	require.Len(t, w.Items, 1)
	assert.Equal(t, "Widget", w.Items[0].Product.Name)
	assert.Equal(t, 5, f.stockOf(t, f.widget.ID))

	c, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Lines, "cart is cleared")

	movements, total, err := f.movements.ListMovements(ctx, &inventoryDto.MovementFilters{MovementType: model.MovementTypeWithdrawal})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, -5, movements[0].QuantityChange)
	require.NotNil(t, movements[0].ReferenceID)
	assert.Equal(t, "1", *movements[0].ReferenceID)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, model.EventTypeWithdrawalConfirmed, f.events.events[0].EventType)
}

func TestConfirmWithdrawal_IsAllOrNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, f.widget.ID, 4)
	f.add(t, f.gadget.ID, 3)

	// Stock drops under the cart after the line was added.
	_, err := f.products.ApplyStockDeltas(ctx, []model.StockDelta{{ProductID: f.gadget.ID, Change: -1}})
	require.NoError(t, err)

	_, err = f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{WithdrawerName: "Ana", WithdrawerSection: "Ops"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "Gadget")

	assert.Equal(t, 10, f.stockOf(t, f.widget.ID), "no partial decrement")
	assert.Equal(t, 2, f.stockOf(t, f.gadget.ID))

	ledger, err := f.uc.ListWithdrawals(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger)

	c, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 2, "cart survives a failed commit")
	assert.Empty(t, f.events.events)
}

func TestConfirmWithdrawal_Preconditions(t *testing.T) {
	ctx := context.Background()
	valid := func() *dto.ConfirmWithdrawalInput {
		return &dto.ConfirmWithdrawalInput{WithdrawerName: "Ana", WithdrawerSection: "Ops"}
	}

	t.Run("no session user", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.widget.ID, 1)
		_, err := f.uc.ConfirmWithdrawal(ctx, nil, valid())
		assert.True(t, apperr.IsUnauthenticated(err))
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.ConfirmWithdrawal(ctx, f.user, valid())
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("blank withdrawer name", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.widget.ID, 1)
		_, err := f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{WithdrawerName: "  ", WithdrawerSection: "Ops"})
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, "withdrawer_name is required", err.Error())
	})

	t.Run("blank withdrawer section", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.widget.ID, 1)
		_, err := f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{WithdrawerName: "Ana"})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("product deleted since it was added", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.widget.ID, 1)
		f.add(t, f.gadget.ID, 1)
		require.NoError(t, f.catalog.DeleteProduct(ctx, f.gadget.ID))

		_, err := f.uc.ConfirmWithdrawal(ctx, f.user, valid())
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, 10, f.stockOf(t, f.widget.ID))
	})
}

func TestLedger_NewestFirstWithUniqueIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.add(t, f.widget.ID, 1)
		_, err := f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{
			WithdrawerName:    "Ana",
			WithdrawerSection: "Ops",
			Notes:             " urgent ",
		})
		require.NoError(t, err)
	}

	ledger, err := f.uc.ListWithdrawals(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{ledger[0].ID, ledger[1].ID, ledger[2].ID})
	assert.Equal(t, "urgent", ledger[0].Notes)
	assert.Equal(t, 7, f.stockOf(t, f.widget.ID))

	w, err := f.uc.GetWithdrawal(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, w.ID)

	_, err = f.uc.GetWithdrawal(ctx, 9)
	assert.True(t, apperr.IsNotFound(err))
}

func TestLedger_SnapshotIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, f.widget.ID, 2)

	w, err := f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{WithdrawerName: "Ana", WithdrawerSection: "Ops"})
	require.NoError(t, err)
	w.Items[0].Quantity = 99

	name := "Renamed"
	_, err = f.catalog.UpdateProduct(ctx, &productDto.UpdateProductInput{ID: f.widget.ID, Name: &name})
	require.NoError(t, err)

	stored, err := f.uc.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, "Widget", stored.Items[0].Product.Name)
}
