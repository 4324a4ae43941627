package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/category"
	"github.com/fekuna/omnipos-warehouse-service/internal/category/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo     category.Repository
	products category.ProductCounter
	// catalog makes the uniqueness and in-use checks atomic with the write
	// that follows. Product writes hold it too.
	catalog  *guard.Stock
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, products category.ProductCounter, catalog *guard.Stock, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		products: products,
		catalog:  catalog,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	cat := &model.Category{Name: input.Name}
	err := uc.catalog.Do(func() error {
		unique, err := uc.repo.IsNameUnique(ctx, input.Name, 0)
		if err != nil {
			return apperr.Internal("check category name", err)
		}
		if !unique {
			return apperr.Conflictf("a category named %q already exists", input.Name)
		}
		if err := uc.repo.Create(ctx, cat); err != nil {
			return apperr.Internal("create category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.Int("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find category", err)
	}
	if cat == nil {
		return nil, apperr.NotFound("category", id)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	if filters == nil {
		filters = &dto.CategoryFilters{}
	}
	categories, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Internal("list categories", err)
	}
	return categories, count, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var cat *model.Category
	err := uc.catalog.Do(func() error {
		var err error
		cat, err = uc.GetCategory(ctx, input.ID)
		if err != nil {
			return err
		}

		unique, err := uc.repo.IsNameUnique(ctx, input.Name, cat.ID)
		if err != nil {
			return apperr.Internal("check category name", err)
		}
		if !unique {
			return apperr.Conflictf("another category named %q already exists", input.Name)
		}

		// Products hold the category id, so a rename is visible on every product at once.
		cat.Name = input.Name
		if err := uc.repo.Update(ctx, cat); err != nil {
			return apperr.Internal("update category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("category renamed", zap.Int("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	// Product creation and category moves hold the same lock, so the count
	// cannot go stale before the delete.
	err := uc.catalog.Do(func() error {
		cat, err := uc.GetCategory(ctx, id)
		if err != nil {
			return err
		}

		count, err := uc.products.CountByCategory(ctx, cat.ID)
		if err != nil {
			return apperr.Internal("count category products", err)
		}
		if count > 0 {
			return apperr.Referential(fmt.Sprintf("category %q is in use by %d products", cat.Name, count), count)
		}

		if err := uc.repo.Delete(ctx, cat.ID); err != nil {
			return apperr.Internal("delete category", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("category deleted", zap.Int("category_id", id))
	return nil
}
