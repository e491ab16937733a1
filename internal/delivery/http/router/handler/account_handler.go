package handler

import (
	"log/slog"
	"net/http"

	"echofinds/internal/delivery/http/response"
	"echofinds/internal/delivery/http/session"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for signup, login, and logout.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type signupRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=2,max=64"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=4"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Home routes the bare domain: dashboard for authenticated sessions, login
// for everyone else.
func (h *AccountHandler) Home(c echo.Context) error {
	if session.From(c).Session.LoggedIn() {
		return response.Redirect(c, "/dashboard")
	}

	return response.Redirect(c, "/login")
}

// SignupPage answers GET /signup.
func (h *AccountHandler) SignupPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Sign up")
}

// Signup handles the registration request, redirecting to /login on
// success.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, "/login")
}

// LoginPage answers GET /login.
func (h *AccountHandler) LoginPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Log in")
}

// Login verifies credentials and stores the identity in the session.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	state := session.From(c)
	state.Session.UserID = user.ID
	state.Session.Username = user.Username
	state.MarkDirty()

	return response.Redirect(c, "/dashboard")
}

// Logout wipes the whole session, guest orders included.
func (h *AccountHandler) Logout(c echo.Context) error {
	state := session.From(c)
	state.Session.Clear()
	state.MarkDirty()

	return response.Redirect(c, "/login")
}
