// Package repository defines the persistence contracts the use cases depend
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"echofinds/internal/domain/entity"
	"echofinds/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and
	// timestamps. Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail returns the user with the given email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changed account fields. Returns ErrDuplicateEmail
	// when the new email collides with another account.
	Update(ctx context.Context, user *entity.User) error
}
