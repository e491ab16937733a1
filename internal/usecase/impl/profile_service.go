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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	images   service.ImageStore
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	images service.ImageStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		hasher:   hasher,
		images:   images,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the account for the profile page.
func (srv *profileService) Get(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to load account")
	}

	return user, nil
}

// Update applies a profile edit. The old image file is removed only after
// the row update succeeds, and even then best-effort.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	oldImage := user.ProfileImage
	if input.Image != nil && input.Image.Filename != "" {
		stored, err := srv.images.Save(input.UserID, input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store profile image")
		}
		user.ProfileImage = stored
	}

	user.Username = input.Username
	user.Email = input.Email

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		// The profile page deliberately surfaces the raw store error to
		// the user; keep the detail attached.
		return nil, domainerrors.NewStoreError(err, "failed to update account")
	}

	if oldImage != "" && user.ProfileImage != oldImage {
		if err := srv.images.Remove(oldImage); err != nil {
			srv.log(ctx).Warn("Failed to remove old profile image",
				slog.String("image", oldImage),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Profile updated", slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}
