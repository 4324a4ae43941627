package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type stubUseCase struct {
	user *model.User
	err  error
}

func (s *stubUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, error) {
	return s.user, nil
}
func (s *stubUseCase) Logout(ctx context.Context) error { return nil }
func (s *stubUseCase) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.user, s.err
}
func (s *stubUseCase) ChangePassword(ctx context.Context, input *dto.ChangePasswordInput) error {
	return nil
}

func runInterceptor(t *testing.T, uc UseCase) *model.User {
	t.Helper()
	var seen *model.User
	interceptor := SessionInterceptor(uc, logger.NewNop())
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = UserFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	return seen
}

func TestSessionInterceptor(t *testing.T) {
	user := &model.User{ID: 1, Name: "Admin"}

	assert.Equal(t, user, runInterceptor(t, &stubUseCase{user: user}))
	assert.Nil(t, runInterceptor(t, &stubUseCase{}))
	assert.Nil(t, runInterceptor(t, &stubUseCase{err: errors.New("redis down")}))
}

func TestUserID(t *testing.T) {
	assert.Nil(t, UserID(context.Background()))

	ctx := WithUser(context.Background(), &model.User{ID: 7})
	id := UserID(ctx)
	require.NotNil(t, id)
	assert.Equal(t, 7, *id)
}
