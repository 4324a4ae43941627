package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	productDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/report"
	"github.com/fekuna/omnipos-warehouse-service/internal/report/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/report/exporter"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal"
	"go.uber.org/zap"
)

type reportUseCase struct {
	products    product.UseCase
	withdrawals withdrawal.UseCase
	logger      logger.ZapLogger
}

func NewReportUseCase(products product.UseCase, withdrawals withdrawal.UseCase, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		products:    products,
		withdrawals: withdrawals,
		logger:      log,
	}
}

func (uc *reportUseCase) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	products, err := uc.products.SearchProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	ledger, err := uc.withdrawals.ListWithdrawals(ctx)
	if err != nil {
		return nil, err
	}

	d := &dto.Dashboard{
		TotalProducts:        len(products),
		TotalWithdrawals:     len(ledger),
		TopWithdrawnProducts: topWithdrawn(products, ledger),
		TopCategories:        topCategories(products),
		RecentProducts:       recentProducts(products),
		RecentWithdrawals:    recentWithdrawals(ledger),
	}
	categories := map[int]struct{}{}
	for i := range products {
		if products[i].IsLowStock() {
			d.LowStockProducts++
		}
		categories[products[i].CategoryID] = struct{}{}
	}
	d.TotalCategories = len(categories)
	return d, nil
}

func topWithdrawn(products []model.Product, ledger []model.Withdrawal) []dto.ProductQuantity {
	totals := map[int]int{}
	for _, w := range ledger {
		for _, it := range w.Items {
			totals[it.ProductID] += it.Quantity
		}
	}
	names := make(map[int]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	out := make([]dto.ProductQuantity, 0, len(totals))
	for id, qty := range totals {
		name, ok := names[id]
		if !ok {
			name = dto.UnknownProduct
		}
		out = append(out, dto.ProductQuantity{ProductID: id, Name: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > dto.TopProductsLimit {
		out = out[:dto.TopProductsLimit]
	}
	return out
}

// topCategories ranks categories by product count. Ties keep first appearance.
func topCategories(products []model.Product) []dto.CategoryCount {
	index := map[string]int{}
	out := []dto.CategoryCount{}
	for _, p := range products {
		name := p.CategoryName()
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, dto.CategoryCount{Category: name, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > dto.TopCategoriesLimit {
		out = out[:dto.TopCategoriesLimit]
	}
	return out
}

func recentProducts(products []model.Product) []model.Product {
	out := append([]model.Product(nil), products...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > dto.RecentLimit {
		out = out[:dto.RecentLimit]
	}
	return out
}

// recentWithdrawals relies on the ledger already being newest first.
func recentWithdrawals(ledger []model.Withdrawal) []model.Withdrawal {
	if len(ledger) > dto.RecentLimit {
		return ledger[:dto.RecentLimit]
	}
	return ledger
}

func (uc *reportUseCase) ExportLowStock(ctx context.Context, filters *productDto.ProductFilters) (*dto.Export, error) {
	products, err := uc.products.ListLowStock(ctx, filters)
	if err != nil {
		return nil, err
	}

	content, err := exporter.LowStock(products)
	if err != nil {
		return nil, apperr.Internal("render low stock export", err)
	}

	uc.logger.Info("low stock export rendered", zap.Int("rows", len(products)))
	return &dto.Export{
		Filename:    fmt.Sprintf("low_stock_products_%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: exporter.ContentType,
		Content:     content,
	}, nil
}

func (uc *reportUseCase) ExportWithdrawal(ctx context.Context, id int) (*dto.Export, error) {
	w, err := uc.withdrawals.GetWithdrawal(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := exporter.Withdrawal(w)
	if err != nil {
		return nil, apperr.Internal("render withdrawal export", err)
	}

	uc.logger.Info("withdrawal export rendered", zap.Int("withdrawal_id", w.ID), zap.Int("rows", len(w.Items)))
	return &dto.Export{
		Filename:    fmt.Sprintf("withdrawal-%d-%s.xlsx", w.ID, w.CreatedAt.Format("2006-01-02")),
		ContentType: exporter.ContentType,
		Content:     content,
	}, nil
}
