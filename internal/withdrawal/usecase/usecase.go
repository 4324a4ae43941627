package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/cart"
	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/dto"
	"go.uber.org/zap"
)

type withdrawalUseCase struct {
	repo      withdrawal.Repository
	carts     cart.Repository
	catalog   product.UseCase
	products  product.Repository
	movements inventory.Repository
	stock     *guard.Stock
	events    withdrawal.EventPublisher
	logger    logger.ZapLogger
	now       func() time.Time
}

type Deps struct {
	Repo      withdrawal.Repository
	Carts     cart.Repository
	Catalog   product.UseCase
	Products  product.Repository
	Movements inventory.Repository
	Stock     *guard.Stock
	Events    withdrawal.EventPublisher // optional
	Logger    logger.ZapLogger
}

func NewWithdrawalUseCase(d Deps) withdrawal.UseCase {
	return &withdrawalUseCase{
		repo:      d.Repo,
		carts:     d.Carts,
		catalog:   d.Catalog,
		products:  d.Products,
		movements: d.Movements,
		stock:     d.Stock,
		events:    d.Events,
		logger:    d.Logger,
		now:       time.Now,
	}
}

func (uc *withdrawalUseCase) ConfirmWithdrawal(ctx context.Context, user *model.User, input *dto.ConfirmWithdrawalInput) (*model.Withdrawal, error) {
	if user == nil {
		return nil, apperr.Unauthenticated("log in to confirm a withdrawal")
	}

	var committed *model.Withdrawal
	err := uc.stock.Do(func() error {
		items, err := uc.carts.Items(ctx)
		if err != nil {
			return apperr.Internal("load cart", err)
		}
		if len(items) == 0 {
			return apperr.Validation("the cart is empty")
		}

		input.WithdrawerName = strings.TrimSpace(input.WithdrawerName)
		input.WithdrawerSection = strings.TrimSpace(input.WithdrawerSection)
		input.Notes = strings.TrimSpace(input.Notes)
		if err := validation.Struct(input); err != nil {
			return err
		}

		// Check every line before touching any stock.
		snapshot := make([]model.WithdrawalItem, 0, len(items))
		deltas := make([]model.StockDelta, 0, len(items))
		total := 0
		for _, item := range items {
			p, err := uc.catalog.GetProduct(ctx, item.ProductID)
			if apperr.IsNotFound(err) {
				return apperr.NotFoundf("product %d in the cart no longer exists", item.ProductID)
			}
			if err != nil {
				return err
			}
			if item.Quantity > p.Stock {
				return apperr.Conflictf("insufficient stock for %s: %d available, %d requested",
					p.Name, p.Stock, item.Quantity)
			}
			snapshot = append(snapshot, model.WithdrawalItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Product:   *p,
			})
			deltas = append(deltas, model.StockDelta{ProductID: item.ProductID, Change: -item.Quantity})
			total += item.Quantity
		}

		changes, err := uc.products.ApplyStockDeltas(ctx, deltas)
		if err != nil {
			return err
		}

		w := &model.Withdrawal{
			Items:             snapshot,
			TotalItems:        total,
			UserID:            user.ID,
			UserName:          user.Name,
			UserSection:       user.Section,
			WithdrawerName:    input.WithdrawerName,
			WithdrawerSection: input.WithdrawerSection,
			Notes:             input.Notes,
			CreatedAt:         uc.now(),
		}
		if err := uc.repo.Create(ctx, w); err != nil {
			uc.revert(ctx, changes)
			return apperr.Internal("record withdrawal", err)
		}

		uc.logMovements(ctx, w, changes)
		if err := uc.carts.Clear(ctx); err != nil {
			uc.logger.Error("failed to clear cart after withdrawal", zap.Int("withdrawal_id", w.ID), zap.Error(err))
		}
		committed = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("withdrawal confirmed",
		zap.Int("withdrawal_id", committed.ID),
		zap.Int("total_items", committed.TotalItems),
		zap.Int("user_id", committed.UserID),
		zap.String("withdrawer", committed.WithdrawerName),
	)
	uc.publish(ctx, committed)
	return committed, nil
}

// logMovements records the decrements without surfacing them to the user.
func (uc *withdrawalUseCase) logMovements(ctx context.Context, w *model.Withdrawal, changes []model.StockChange) {
	ref := strconv.Itoa(w.ID)
	userID := w.UserID
	movements := make([]*model.StockMovement, len(changes))
	for i, c := range changes {
		uc.logger.Debug("stock decremented",
			zap.Int("product_id", c.ProductID),
			zap.Int("quantity_before", c.Before),
			zap.Int("quantity_after", c.After),
		)
		refID := ref
		movements[i] = &model.StockMovement{
			ProductID:      c.ProductID,
			MovementType:   model.MovementTypeWithdrawal,
			QuantityChange: c.Change,
			QuantityBefore: c.Before,
			QuantityAfter:  c.After,
			ReferenceID:    &refID,
			Notes:          "withdrawal #" + ref,
			CreatedBy:      &userID,
			CreatedAt:      w.CreatedAt,
		}
	}
	if err := uc.movements.LogMovements(ctx, movements); err != nil {
		uc.logger.Error("failed to log withdrawal movements", zap.Int("withdrawal_id", w.ID), zap.Error(err))
	}
}

// revert undoes applied decrements when the ledger write fails.
func (uc *withdrawalUseCase) revert(ctx context.Context, changes []model.StockChange) {
	deltas := make([]model.StockDelta, len(changes))
	for i, c := range changes {
		deltas[i] = model.StockDelta{ProductID: c.ProductID, Change: -c.Change}
	}
	if _, err := uc.products.ApplyStockDeltas(ctx, deltas); err != nil {
		uc.logger.Error("failed to revert stock after ledger failure", zap.Error(err))
	}
}

func (uc *withdrawalUseCase) publish(ctx context.Context, w *model.Withdrawal) {
	if uc.events == nil {
		return
	}
	items := make([]model.StockDeltaItem, len(w.Items))
	for i, it := range w.Items {
		items[i] = model.StockDeltaItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	event := model.NewEvent(model.EventTypeWithdrawalConfirmed, model.WithdrawalConfirmedPayload{
		WithdrawalID:      w.ID,
		Items:             items,
		TotalItems:        w.TotalItems,
		WithdrawerName:    w.WithdrawerName,
		WithdrawerSection: w.WithdrawerSection,
	})
	if err := uc.events.Publish(ctx, strconv.Itoa(w.ID), event); err != nil {
		uc.logger.Warn("failed to publish withdrawal event", zap.Int("withdrawal_id", w.ID), zap.Error(err))
	}
}

func (uc *withdrawalUseCase) GetWithdrawal(ctx context.Context, id int) (*model.Withdrawal, error) {
	w, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find withdrawal", err)
	}
	if w == nil {
		return nil, apperr.NotFound("withdrawal", id)
	}
	return w, nil
}

func (uc *withdrawalUseCase) ListWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	ledger, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("list withdrawals", err)
	}
	return ledger, nil
}
