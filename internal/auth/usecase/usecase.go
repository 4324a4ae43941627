package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/auth/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// employeeCodePattern is six digits followed by one lowercase letter.
var employeeCodePattern = regexp.MustCompile(`^\d{6}[a-z]$`)

// Account is the single configured operator.
type Account struct {
	User            model.User
	DefaultPassword string // used until a password is changed
	BcryptCost      int
}

type authUseCase struct {
	repo    auth.Repository
	account Account
	logger  logger.ZapLogger
}

func NewAuthUseCase(repo auth.Repository, account Account, log logger.ZapLogger) auth.UseCase {
	if account.BcryptCost == 0 {
		account.BcryptCost = bcrypt.DefaultCost
	}
	return &authUseCase{
		repo:    repo,
		account: account,
		logger:  log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, error) {
	input.EmployeeCode = strings.TrimSpace(input.EmployeeCode)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !employeeCodePattern.MatchString(input.EmployeeCode) {
		return nil, apperr.Validation("employee_code must be 6 digits followed by a lowercase letter")
	}

	if input.EmployeeCode != uc.account.User.EmployeeCode {
		uc.logger.Info("login rejected", zap.String("employee_code", input.EmployeeCode))
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	ok, err := uc.passwordMatches(ctx, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		uc.logger.Info("login rejected", zap.String("employee_code", input.EmployeeCode))
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	user := uc.account.User
	data, err := json.Marshal(&user)
	if err != nil {
		return nil, apperr.Internal("encode session user", err)
	}
	if err := uc.repo.Set(ctx, auth.KeyUser, string(data)); err != nil {
		return nil, apperr.Internal("store session", err)
	}

	uc.logger.Info("user logged in", zap.Int("user_id", user.ID))
	return &user, nil
}

func (uc *authUseCase) Logout(ctx context.Context) error {
	if err := uc.repo.Delete(ctx, auth.KeyUser); err != nil {
		return apperr.Internal("clear session", err)
	}
	uc.logger.Info("user logged out")
	return nil
}

func (uc *authUseCase) CurrentUser(ctx context.Context) (*model.User, error) {
	data, found, err := uc.repo.Get(ctx, auth.KeyUser)
	if err != nil {
		return nil, apperr.Internal("load session", err)
	}
	if !found {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// A corrupt entry is treated as no session.
		uc.logger.Warn("discarding unreadable session entry", zap.Error(err))
		return nil, nil
	}
	return &user, nil
}

func (uc *authUseCase) ChangePassword(ctx context.Context, input *dto.ChangePasswordInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}

	ok, err := uc.passwordMatches(ctx, input.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Unauthenticated("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), uc.account.BcryptCost)
	if err != nil {
		return apperr.Internal("hash password", err)
	}
	if err := uc.repo.Set(ctx, auth.KeyPassword, string(hash)); err != nil {
		return apperr.Internal("store password", err)
	}

	uc.logger.Info("password changed", zap.Int("user_id", uc.account.User.ID))
	return nil
}

func (uc *authUseCase) passwordMatches(ctx context.Context, password string) (bool, error) {
	hash, found, err := uc.repo.Get(ctx, auth.KeyPassword)
	if err != nil {
		return false, apperr.Internal("load password", err)
	}
	if !found {
		return password == uc.account.DefaultPassword, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Internal("compare password", err)
	}
	return true, nil
}
