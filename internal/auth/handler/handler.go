package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

var _ pb.AuthServiceServer = (*AuthHandler)(nil)

type AuthHandler struct {
	uc     auth.UseCase
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.SessionResponse, error) {
	user, err := h.uc.Login(ctx, &dto.LoginInput{
		EmployeeCode: req.EmployeeCode,
		Password:     req.Password,
	})
	if err != nil {
		return nil, h.fail("failed to log in", err)
	}
	return &pb.SessionResponse{User: mapUserToProto(user)}, nil
}

func (h *AuthHandler) Logout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := h.uc.Logout(ctx); err != nil {
		return nil, h.fail("failed to log out", err)
	}
	return &pb.Empty{}, nil
}

func (h *AuthHandler) GetSession(ctx context.Context, _ *pb.Empty) (*pb.SessionResponse, error) {
	user, err := h.uc.CurrentUser(ctx)
	if err != nil {
		return nil, h.fail("failed to load session", err)
	}
	return &pb.SessionResponse{User: mapUserToProto(user)}, nil
}

func (h *AuthHandler) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.Empty, error) {
	err := h.uc.ChangePassword(ctx, &dto.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, h.fail("failed to change password", err)
	}
	return &pb.Empty{}, nil
}

func (h *AuthHandler) fail(msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.logger.Error(msg, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func mapUserToProto(u *model.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmployeeCode: u.EmployeeCode,
		Role:         u.Role,
		Section:      u.Section,
	}
}
