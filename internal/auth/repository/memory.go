package repository

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: map[string]string{}}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	return v, ok, nil
}

func (r *MemoryRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = value
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}
