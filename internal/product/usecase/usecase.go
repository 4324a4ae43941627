package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/category"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo       product.Repository
	categories category.Repository
	stock      *guard.Stock
	logger     logger.ZapLogger
	now        func() time.Time
}

func NewProductUseCase(repo product.Repository, categories category.Repository, stock *guard.Stock, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		stock:      stock,
		logger:     log,
		now:        time.Now,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, apperr.Validation("price must be greater than 0")
	}

	var p *model.Product
	// The category must still exist when the product lands, so the check and
	// the write share the lock that category deletion takes.
	err := uc.stock.Do(func() error {
		cat, err := uc.findCategory(ctx, input.CategoryID)
		if err != nil {
			return err
		}

		now := uc.now()
		p = &model.Product{
			BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
			Name:        input.Name,
			Description: input.Description,
			CategoryID:  cat.ID,
			Stock:       input.Stock,
			MinStock:    input.MinStock,
			Price:       input.Price,
		}
		if err := uc.repo.Create(ctx, p); err != nil {
			return apperr.Internal("create product", err)
		}
		p.Category = cat
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("stock", p.Stock),
	)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product", id)
	}

	cat, err := uc.categories.FindByID(ctx, p.CategoryID)
	if err != nil {
		return nil, apperr.Internal("find category", err)
	}
	p.Category = cat
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	var updated *model.Product
	// Stock and category may change here, so the merge runs under the catalog lock.
	err := uc.stock.Do(func() error {
		p, err := uc.GetProduct(ctx, input.ID)
		if err != nil {
			return err
		}

		if input.CategoryID != nil && *input.CategoryID != p.CategoryID {
			cat, err := uc.findCategory(ctx, *input.CategoryID)
			if err != nil {
				return err
			}
			p.CategoryID = cat.ID
			p.Category = cat
		}
		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Stock != nil {
			p.Stock = *input.Stock
		}
		if input.MinStock != nil {
			p.MinStock = *input.MinStock
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		p.UpdatedAt = uc.now()

		if err := uc.repo.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int("product_id", updated.ID))
	return updated, nil
}

func validateUpdate(input *dto.UpdateProductInput) error {
	if input.ID <= 0 {
		return apperr.Validation("id must be greater than 0")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return apperr.Validation("name is required")
	}
	if input.CategoryID != nil && *input.CategoryID <= 0 {
		return apperr.Validation("category_id must be greater than 0")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return apperr.Validation("stock must be at least 0")
	}
	if input.MinStock != nil && *input.MinStock < 0 {
		return apperr.Validation("min_stock must be at least 0")
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return apperr.Validation("price must be greater than 0")
	}
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	err := uc.stock.Do(func() error {
		p, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return apperr.Internal("find product", err)
		}
		if p == nil {
			return apperr.NotFound("product", id)
		}
		return uc.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.Int("product_id", id))
	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	if err := validation.Struct(filters); err != nil {
		return nil, 0, err
	}

	products, err := uc.find(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	sortProducts(products, filters.SortBy, filters.SortOrder)

	count := len(products)
	return paginate(products, filters.Page, filters.PageSize), count, nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	return uc.find(ctx, &dto.ProductFilters{Search: query})
}

func (uc *productUseCase) FilterByCategory(ctx context.Context, name string) ([]model.Product, error) {
	return uc.find(ctx, &dto.ProductFilters{Category: name})
}

func (uc *productUseCase) ListLowStock(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	f := dto.ProductFilters{}
	if filters != nil {
		f = *filters
	}
	f.LowStock = true
	return uc.find(ctx, &f)
}

// find resolves the category name filter, queries the repository and joins
// categories onto the result.
func (uc *productUseCase) find(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	cats, _, err := uc.categories.FindAll(ctx, nil)
	if err != nil {
		return nil, apperr.Internal("list categories", err)
	}
	byID := make(map[int]*model.Category, len(cats))
	for i := range cats {
		byID[cats[i].ID] = &cats[i]
	}

	f := *filters
	name := strings.TrimSpace(f.Category)
	if name != "" && !strings.EqualFold(name, dto.AllCategories) {
		f.CategoryID = 0
		for i := range cats {
			if cats[i].Name == name {
				f.CategoryID = cats[i].ID
				break
			}
		}
		if f.CategoryID == 0 {
			return []model.Product{}, nil
		}
	}

	products, err := uc.repo.FindAll(ctx, &f)
	if err != nil {
		return nil, apperr.Internal("list products", err)
	}
	for i := range products {
		if cat, ok := byID[products[i].CategoryID]; ok {
			c := *cat
			products[i].Category = &c
		}
	}
	return products, nil
}

func (uc *productUseCase) findCategory(ctx context.Context, id int) (*model.Category, error) {
	cat, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find category", err)
	}
	if cat == nil {
		return nil, apperr.NotFound("category", id)
	}
	return cat, nil
}

func sortProducts(products []model.Product, sortBy, order string) {
	if sortBy == "" {
		return
	}
	less := func(a, b *model.Product) bool {
		switch sortBy {
		case dto.SortByStock:
			return a.Stock < b.Stock
		case dto.SortByCategory:
			return strings.ToLower(a.CategoryName()) < strings.ToLower(b.CategoryName())
		case dto.SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	desc := order == "desc"
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(&products[j], &products[i])
		}
		return less(&products[i], &products[j])
	})
}

func paginate(products []model.Product, page, pageSize int) []model.Product {
	if pageSize <= 0 {
		return products
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
