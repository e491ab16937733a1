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

// ProfileHandler holds dependencies for the account profile routes.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type profileForm struct {
	Username string `form:"username" json:"username" validate:"required,min=2,max=64"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password"` // Blank keeps the current password.
}

// Get answers GET /profile with the current account.
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), session.From(c).Session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// Update handles the multipart profile form, refreshing the session
// username on success. Store failures propagate with their raw detail.
func (h *ProfileHandler) Update(c echo.Context) error {
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	// The profile form posts its file as "image"; "profile_image" is kept
	// as an alias for API clients.
	image, cleanup, err := formImage(c, "image", "profile_image")
	if err != nil {
		return err
	}
	defer cleanup()

	state := session.From(c)
	user, err := h.uc.Update(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:   state.Session.UserID,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Image:    image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if state.Session.Username != user.Username {
		state.Session.Username = user.Username
		state.MarkDirty()
	}

	return response.Redirect(c, "/profile")
}
