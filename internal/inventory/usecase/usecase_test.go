package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	categoryRepo "github.com/fekuna/omnipos-warehouse-service/internal/category/repository"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productRepo "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	productUseCase "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []model.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, payload.(model.Event))
	return p.err
}

type fixture struct {
	uc        inventory.UseCase
	movements *repository.MemoryRepository
	products  *productRepo.MemoryRepository
	events    *recordingPublisher
	widget    *model.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	cats := categoryRepo.NewMemoryRepository()
	tools := &model.Category{Name: "Tools"}
	require.NoError(t, cats.Create(ctx, tools))

	products := productRepo.NewMemoryRepository()
	widget := &model.Product{Name: "Widget", CategoryID: tools.ID, Stock: 10, MinStock: 2, Price: decimal.NewFromInt(3)}
	require.NoError(t, products.Create(ctx, widget))

	stock := guard.New()
	movements := repository.NewMemoryRepository()
	events := &recordingPublisher{}
	catalog := productUseCase.NewProductUseCase(products, cats, stock, logger.NewNop())

	return &fixture{
		uc:        NewInventoryUseCase(movements, products, catalog, stock, events, logger.NewNop()),
		movements: movements,
		products:  products,
		events:    events,
		widget:    widget,
	}
}

func TestAdjustInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := 1

	p, movement, err := f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
		ProductID:      f.widget.ID,
		QuantityChange: -4,
		Reason:         " damaged ",
		UserID:         &userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock)
	assert.Equal(t, "Tools", p.CategoryName())

	assert.Equal(t, 1, movement.ID)
	assert.Equal(t, model.MovementTypeAdjustment, movement.MovementType)
	assert.Equal(t, 10, movement.QuantityBefore)
	assert.Equal(t, 6, movement.QuantityAfter)
	assert.Equal(t, "damaged", movement.Notes)
	require.NotNil(t, movement.CreatedBy)
	assert.Equal(t, 1, *movement.CreatedBy)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, "1", f.events.keys[0])
	assert.Equal(t, model.EventTypeStockAdjusted, f.events.events[0].EventType)
	assert.NotEmpty(t, f.events.events[0].EventID)
}

func TestAdjustInventory_WouldGoNegative(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: f.widget.ID, QuantityChange: -20})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	got, err := f.products.FindByID(ctx, f.widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)

	_, total, err := f.uc.ListMovements(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, f.events.events)
}

func TestAdjustInventory_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: f.widget.ID})
	assert.True(t, apperr.IsValidation(err))

	_, _, err = f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: 99, QuantityChange: 1})
	assert.True(t, apperr.IsNotFound(err))

	_, _, err = f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: f.widget.ID, QuantityChange: 1, MovementType: "withdrawal"})
	assert.True(t, apperr.IsValidation(err))
}

func TestAdjustInventory_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("broker down")

	p, _, err := f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: f.widget.ID, QuantityChange: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, p.Stock)
}

func TestListMovements_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, change := range []int{1, 2, 3} {
		_, _, err := f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: f.widget.ID, QuantityChange: change})
		require.NoError(t, err)
	}
	_, _, err := f.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
		ProductID:      f.widget.ID,
		QuantityChange: 4,
		MovementType:   model.MovementTypeReceipt,
		ReferenceID:    "PO-7",
	})
	require.NoError(t, err)

	movements, total, err := f.uc.ListMovements(ctx, &dto.MovementFilters{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, movements, 2)
	assert.Equal(t, 4, movements[0].ID)
	assert.Equal(t, 3, movements[1].ID)

	receipts, total, err := f.uc.ListMovements(ctx, &dto.MovementFilters{MovementType: model.MovementTypeReceipt})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.NotNil(t, receipts[0].ReferenceID)
	assert.Equal(t, "PO-7", *receipts[0].ReferenceID)
	assert.Equal(t, 20, receipts[0].QuantityAfter)
}
