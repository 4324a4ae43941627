package auth

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type userKey struct{}

// WithUser attaches the session user for attribution further down the call.
func WithUser(ctx context.Context, user *model.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the session user, or nil when nobody is logged in.
func UserFromContext(ctx context.Context) *model.User {
	if u, ok := ctx.Value(userKey{}).(*model.User); ok {
		return u
	}
	return nil
}

// UserID returns the session user's id for audit fields, or nil.
func UserID(ctx context.Context) *int {
	u := UserFromContext(ctx)
	if u == nil {
		return nil
	}
	id := u.ID
	return &id
}
