package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofinds/internal/domain/entity"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/domain/repository"
	"echofinds/internal/usecase"
)

func profileUserRepo(stored *entity.User, updated **entity.User) *stubUserRepo {
	return &stubUserRepo{
		FindByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			if id != stored.ID {
				return nil, repository.ErrUserNotFound
			}
			copied := *stored

			return &copied, nil
		},
		UpdateFn: func(_ context.Context, user *entity.User) error {
			*updated = user

			return nil
		},
	}
}

func TestProfileUpdate(t *testing.T) {
	t.Parallel()

	stored := &entity.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed:old",
		ProfileImage: "old.jpg",
	}

	t.Run("blank password keeps the current hash", func(t *testing.T) {
		t.Parallel()

		var updated *entity.User
		srv := NewProfileService(profileUserRepo(stored, &updated), &fakeHasher{}, &fakeImageStore{}, testLogger())

		user, err := srv.Update(context.Background(), &usecase.UpdateProfileInput{
			UserID:   7,
			Username: "alice2",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:old", user.PasswordHash)
		require.NotNil(t, updated)
		assert.Equal(t, "alice2", updated.Username)
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		t.Parallel()

		var updated *entity.User
		srv := NewProfileService(profileUserRepo(stored, &updated), &fakeHasher{}, &fakeImageStore{}, testLogger())

		user, err := srv.Update(context.Background(), &usecase.UpdateProfileInput{
			UserID:   7,
			Username: "alice",
			Email:    "alice@example.com",
			Password: "fresh",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:fresh", user.PasswordHash)
	})

	t.Run("new image replaces the old file after the row update", func(t *testing.T) {
		t.Parallel()

		var updated *entity.User
		images := &fakeImageStore{}
		srv := NewProfileService(profileUserRepo(stored, &updated), &fakeHasher{}, images, testLogger())

		user, err := srv.Update(context.Background(), &usecase.UpdateProfileInput{
			UserID:   7,
			Username: "alice",
			Email:    "alice@example.com",
			Image:    &usecase.ImageUpload{Filename: "new.jpg", Content: strings.NewReader("img")},
		})
		require.NoError(t, err)
		assert.Equal(t, "stored_new.jpg", user.ProfileImage)
		assert.Equal(t, []string{"old.jpg"}, images.removed)
	})

	t.Run("failed row update leaves the old image in place", func(t *testing.T) {
		t.Parallel()

		images := &fakeImageStore{}
		userRepo := &stubUserRepo{
			FindByIDFn: func(_ context.Context, _ uint) (*entity.User, error) {
				copied := *stored

				return &copied, nil
			},
			UpdateFn: func(_ context.Context, _ *entity.User) error {
				return assert.AnError
			},
		}

		srv := NewProfileService(userRepo, &fakeHasher{}, images, testLogger())

		_, err := srv.Update(context.Background(), &usecase.UpdateProfileInput{
			UserID:   7,
			Username: "alice",
			Email:    "alice@example.com",
			Image:    &usecase.ImageUpload{Filename: "new.jpg", Content: strings.NewReader("img")},
		})
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
		assert.Empty(t, images.removed)
	})

	t.Run("email collision maps to ErrEmailTaken", func(t *testing.T) {
		t.Parallel()

		userRepo := &stubUserRepo{
			FindByIDFn: func(_ context.Context, _ uint) (*entity.User, error) {
				copied := *stored

				return &copied, nil
			},
			UpdateFn: func(_ context.Context, _ *entity.User) error {
				return repository.ErrDuplicateEmail
			},
		}

		srv := NewProfileService(userRepo, &fakeHasher{}, &fakeImageStore{}, testLogger())

		_, err := srv.Update(context.Background(), &usecase.UpdateProfileInput{
			UserID:   7,
			Username: "alice",
			Email:    "taken@example.com",
		})
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		t.Parallel()

		var updated *entity.User
		srv := NewProfileService(profileUserRepo(stored, &updated), &fakeHasher{}, &fakeImageStore{}, testLogger())

		_, err := srv.Get(context.Background(), 404)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
