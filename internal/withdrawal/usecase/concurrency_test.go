package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	inventoryDto "github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	inventoryUseCase "github.com/fekuna/omnipos-warehouse-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmWithdrawal_ConcurrentCommitsSucceedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, f.widget.ID, 10)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{
				WithdrawerName:    "Ana",
				WithdrawerSection: "Ops",
			})
		}(i)
	}
	wg.Wait()

	committed := 0
	for _, err := range errs {
		if err == nil {
			committed++
			continue
		}
		assert.True(t, apperr.IsValidation(err), "later commits see an empty cart, got %v", err)
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, 0, f.stockOf(t, f.widget.ID))

	ledger, err := f.uc.ListWithdrawals(ctx)
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}

func TestConfirmWithdrawal_RacesManualAdjustment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inventory := inventoryUseCase.NewInventoryUseCase(f.movements, f.products, f.catalog, f.stock, nil, logger.NewNop())

	for round := 0; round < 20; round++ {
		_, _, err := inventory.AdjustInventory(ctx, &inventoryDto.AdjustInventoryInput{
			ProductID:      f.widget.ID,
			QuantityChange: 10 - f.stockOf(t, f.widget.ID),
			Reason:         "reset",
		})
		if err != nil {
			require.True(t, apperr.IsValidation(err), "zero change when already at 10")
		}
		f.add(t, f.widget.ID, 10)

		var wg sync.WaitGroup
		var commitErr, adjustErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, commitErr = f.uc.ConfirmWithdrawal(ctx, f.user, &dto.ConfirmWithdrawalInput{
				WithdrawerName:    "Ana",
				WithdrawerSection: "Ops",
			})
		}()
		go func() {
			defer wg.Done()
			_, _, adjustErr = inventory.AdjustInventory(ctx, &inventoryDto.AdjustInventoryInput{
				ProductID:      f.widget.ID,
				QuantityChange: -4,
				Reason:         "damaged",
			})
		}()
		wg.Wait()

		stock := f.stockOf(t, f.widget.ID)
		switch {
		case commitErr == nil:
			assert.True(t, apperr.IsConflict(adjustErr), "adjustment after the commit would go negative")
			assert.Equal(t, 0, stock)
		case adjustErr == nil:
			assert.True(t, apperr.IsConflict(commitErr), "commit after the adjustment lacks stock")
			assert.Equal(t, 6, stock)
			_, err := f.cart.ClearCart(ctx)
			require.NoError(t, err)
		default:
			t.Fatalf("one side must win: commit %v, adjust %v", commitErr, adjustErr)
		}
		assert.GreaterOrEqual(t, stock, 0)
	}
}
