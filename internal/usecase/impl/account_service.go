// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "echofinds/internal/delivery/context"
	"echofinds/internal/domain/entity"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/domain/repository"
	"echofinds/internal/domain/service"
	"echofinds/internal/errors"
	"echofinds/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(userRepo repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a new account. The password is stored only as a bcrypt
// hash, and the email must be unique.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, domainerrors.NewStoreError(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Uint64("userID", uint64(user.ID)), slog.String("email", user.Email))

	return user, nil
}

// Login verifies credentials. A missing account and a wrong password are
// indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewStoreError(err, "failed to load account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
