package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-warehouse-service/internal/category/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

// MemoryRepository keeps categories for the lifetime of the process.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories []model.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.categories {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	r.categories = append(r.categories, *c)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := []model.Category{}
	for _, c := range r.categories {
		if f != nil && f.Name != "" && c.Name != f.Name {
			continue
		}
		categories = append(categories, c)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	count := len(categories)
	if f != nil && f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start > count {
			start = count
		}
		end := start + f.PageSize
		if end > count {
			end = count
		}
		categories = categories[start:end]
	}
	return categories, count, nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == c.ID {
			r.categories[i] = *c
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) IsNameUnique(ctx context.Context, name string, excludeID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return false, nil
		}
	}
	return true, nil
}
