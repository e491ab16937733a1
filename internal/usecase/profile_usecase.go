package usecase

import (
	"context"

	"echofinds/internal/domain/entity"
)

// UpdateProfileInput defines a profile edit. Blank Password keeps the
// current hash; nil Image keeps the current profile image.
type UpdateProfileInput struct {
	UserID   uint
	Username string
	Email    string
	Password string
	Image    *ImageUpload
}

// ProfileUsecase reads and updates the logged-in user's account.
type ProfileUsecase interface {
	// Get returns the account or ErrNotFound.
	Get(ctx context.Context, userID uint) (*entity.User, error)

	// Update applies the edit and returns the refreshed account. A new
	// image replaces the old one, whose file is removed best-effort after
	// the row update succeeds.
	Update(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
