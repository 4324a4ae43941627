package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
)

// MemoryRepository keeps products for the lifetime of the process. Returned
// products are copies; callers write back through Update.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []model.Product
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	r.products = append(r.products, stored(p))
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f == nil {
		f = &dto.ProductFilters{}
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	products := []model.Product{}
	for _, p := range r.products {
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.LowStock && !p.IsLowStock() {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		products = append(products, *p.Clone())
	}
	return products, nil
}

func (r *MemoryRepository) Update(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return apperr.NotFound("product", p.ID)
	}
	r.products[i] = stored(p)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperr.NotFound("product", id)
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *MemoryRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) ApplyStockDeltas(ctx context.Context, deltas []model.StockDelta) ([]model.StockChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check the whole batch first. A product may appear more than once.
	projected := make(map[int]int, len(deltas))
	for _, d := range deltas {
		i := r.indexOf(d.ProductID)
		if i < 0 {
			return nil, apperr.NotFound("product", d.ProductID)
		}
		current, seen := projected[d.ProductID]
		if !seen {
			current = r.products[i].Stock
		}
		if current+d.Change < 0 {
			return nil, apperr.Conflictf("insufficient stock for %s: %d available, %d requested",
				r.products[i].Name, current, -d.Change)
		}
		projected[d.ProductID] = current + d.Change
	}

	now := r.now()
	changes := make([]model.StockChange, 0, len(deltas))
	for _, d := range deltas {
		p := &r.products[r.indexOf(d.ProductID)]
		change := model.StockChange{
			ProductID: d.ProductID,
			Change:    d.Change,
			Before:    p.Stock,
			After:     p.Stock + d.Change,
		}
		p.Stock = change.After
		p.UpdatedAt = now
		changes = append(changes, change)
	}
	return changes, nil
}

func (r *MemoryRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// stored drops the joined category so renames are never shadowed by a stale copy.
func stored(p *model.Product) model.Product {
	c := *p
	c.Category = nil
	return c
}
