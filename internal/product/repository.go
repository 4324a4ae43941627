package product

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
)

// Repository stores products. Find methods return (nil, nil) for unknown ids
// and never join the category.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	// FindAll returns every product matching filters in insertion order.
	// Only Search, CategoryID and LowStock are applied here.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int) error

	CountByCategory(ctx context.Context, categoryID int) (int, error)

	// ApplyStockDeltas checks every delta against current stock and applies
	// all of them, or none when any product is unknown or would go negative.
	ApplyStockDeltas(ctx context.Context, deltas []model.StockDelta) ([]model.StockChange, error)
}
