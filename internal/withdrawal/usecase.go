package withdrawal

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/dto"
)

type UseCase interface {
	// ConfirmWithdrawal commits the cart on behalf of user. user is nil when
	// nobody is logged in.
	ConfirmWithdrawal(ctx context.Context, user *model.User, input *dto.ConfirmWithdrawalInput) (*model.Withdrawal, error)
	GetWithdrawal(ctx context.Context, id int) (*model.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]model.Withdrawal, error)
}
