package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-warehouse-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	movements []model.StockMovement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) LogMovements(ctx context.Context, movements []*model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, m := range r.movements {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	for _, m := range movements {
		maxID++
		m.ID = maxID
		r.movements = append(r.movements, *m)
	}
	return nil
}

func (r *MemoryRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f == nil {
		f = &dto.MovementFilters{}
	}

	movements := []model.StockMovement{}
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if f.ProductID != 0 && m.ProductID != f.ProductID {
			continue
		}
		if f.MovementType != "" && m.MovementType != f.MovementType {
			continue
		}
		movements = append(movements, m)
	}

	count := len(movements)
	if f.PageSize > 0 {
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
		movements = movements[start:end]
	}
	return movements, count, nil
}
