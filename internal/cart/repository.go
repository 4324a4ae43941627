package cart

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

// Repository holds the single withdrawal draft. Items keep insertion order.
type Repository interface {
	Items(ctx context.Context) ([]model.CartItem, error)
	Save(ctx context.Context, items []model.CartItem) error
	Clear(ctx context.Context) error
}
