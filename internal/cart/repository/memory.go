package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items []model.CartItem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Items(ctx context.Context) ([]model.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.CartItem{}, r.items...), nil
}

func (r *MemoryRepository) Save(ctx context.Context, items []model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]model.CartItem(nil), items...)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}
