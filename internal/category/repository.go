package category

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/category/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

// Repository stores categories. Find methods return (nil, nil) for unknown ids.
type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int) error

	// IsNameUnique compares case-insensitively, ignoring excludeID.
	IsNameUnique(ctx context.Context, name string, excludeID int) (bool, error)
}

// ProductCounter reports how many products reference a category.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID int) (int, error)
}
