package auth

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*model.User, error)
	Logout(ctx context.Context) error
	// CurrentUser returns nil when nobody is logged in.
	CurrentUser(ctx context.Context) (*model.User, error)
	ChangePassword(ctx context.Context, input *dto.ChangePasswordInput) error
}
