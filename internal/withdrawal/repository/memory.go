package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	ledger []*model.Withdrawal // newest first
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, w *model.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.ledger {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	w.ID = maxID + 1
	r.ledger = append([]*model.Withdrawal{w.Clone()}, r.ledger...)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*model.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.ledger {
		if w.ID == id {
			return w.Clone(), nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := make([]model.Withdrawal, len(r.ledger))
	for i, w := range r.ledger {
		ledger[i] = *w.Clone()
	}
	return ledger, nil
}
