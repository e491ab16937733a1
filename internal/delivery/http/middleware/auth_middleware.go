package middleware

import (
	"echofinds/internal/delivery/http/session"
	domainerrors "echofinds/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes that need an authenticated session.
type AuthMiddleware struct{}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireLogin rejects requests whose session carries no user; the error
// handler turns the rejection into a redirect to /login.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !session.From(c).Session.LoggedIn() {
			return domainerrors.ErrLoginRequired
		}

		return next(c)
	}
}
