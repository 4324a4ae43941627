package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/category"
	categoryRepo "github.com/fekuna/omnipos-warehouse-service/internal/category/repository"
	categoryUseCase "github.com/fekuna/omnipos-warehouse-service/internal/category/usecase"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedRepository parks product writes once armed: it signals entered, then
// waits for release before writing.
type gatedRepository struct {
	*repository.MemoryRepository
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepository) arm() {
	r.entered = make(chan struct{})
	r.release = make(chan struct{})
}

func (r *gatedRepository) wait() {
	if r.entered == nil {
		return
	}
	close(r.entered)
	<-r.release
}

func (r *gatedRepository) Create(ctx context.Context, p *model.Product) error {
	r.wait()
	return r.MemoryRepository.Create(ctx, p)
}

func (r *gatedRepository) Update(ctx context.Context, p *model.Product) error {
	r.wait()
	return r.MemoryRepository.Update(ctx, p)
}

type categoryGuardFixture struct {
	repo       *gatedRepository
	categories *categoryRepo.MemoryRepository
	products   product.UseCase
	catalog    category.UseCase
	tools      *model.Category
	paper      *model.Category
}

func newCategoryGuardFixture(t *testing.T) *categoryGuardFixture {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()

	cats := categoryRepo.NewMemoryRepository()
	tools := &model.Category{Name: "Tools"}
	paper := &model.Category{Name: "Paper"}
	require.NoError(t, cats.Create(ctx, tools))
	require.NoError(t, cats.Create(ctx, paper))

	repo := &gatedRepository{MemoryRepository: repository.NewMemoryRepository()}
	stock := guard.New()
	return &categoryGuardFixture{
		repo:       repo,
		categories: cats,
		products:   NewProductUseCase(repo, cats, stock, log),
		catalog:    categoryUseCase.NewCategoryUseCase(cats, repo, stock, log),
		tools:      tools,
		paper:      paper,
	}
}

// raceDelete starts write, waits until it is about to store the product, then
// asks to delete Tools. The delete must wait for the write and then see it.
func (f *categoryGuardFixture) raceDelete(t *testing.T, write func() error) {
	t.Helper()
	ctx := context.Background()

	f.repo.arm()
	written := make(chan error, 1)
	go func() { written <- write() }()
	<-f.repo.entered

	deleted := make(chan error, 1)
	go func() { deleted <- f.catalog.DeleteCategory(ctx, f.tools.ID) }()

	select {
	case err := <-deleted:
		t.Fatalf("category delete finished while a product write into it was pending: %v", err)
	case <-time.After(20 * time.Millisecond):
	}
	close(f.repo.release)

	require.NoError(t, <-written)
	err := <-deleted
	assert.True(t, apperr.IsReferential(err), "got %v", err)
	assert.Equal(t, 1, apperr.ReferenceCount(err))

	cat, err := f.categories.FindByID(ctx, f.tools.ID)
	require.NoError(t, err)
	assert.NotNil(t, cat, "category must survive")
}

func TestCreateProduct_HoldsOffCategoryDelete(t *testing.T) {
	f := newCategoryGuardFixture(t)

	f.raceDelete(t, func() error {
		_, err := f.products.CreateProduct(context.Background(), &dto.CreateProductInput{
			Name:       "Widget",
			CategoryID: f.tools.ID,
			Stock:      1,
			Price:      decimal.NewFromInt(1),
		})
		return err
	})
}

func TestUpdateProduct_CategoryMoveHoldsOffCategoryDelete(t *testing.T) {
	f := newCategoryGuardFixture(t)
	p, err := f.products.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:       "Widget",
		CategoryID: f.paper.ID,
		Stock:      1,
		Price:      decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	f.raceDelete(t, func() error {
		_, err := f.products.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ID:         p.ID,
			CategoryID: &f.tools.ID,
		})
		return err
	})
}
