// Package usecase contains the application-specific business rules. It
// orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"echofinds/internal/domain/entity"
)

// ImageUpload is an optional multipart image attached to a form.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AccountUsecase defines signup and login. Logout is pure session state and
// lives in the delivery layer.
type AccountUsecase interface {
	// Signup creates a new account with a hashed password. A taken email
	// yields ErrEmailTaken.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies email and password, returning the account on success
	// and ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)
}
