package middleware

import (
	"log/slog"
	"net/http"

	"echofinds/internal/delivery/http/response"
	domainerrors "echofinds/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps application errors to user-visible behavior, one
// policy for the whole app: login-required redirects to /login, silent
// page-flow failures redirect to the route's declared target, everything
// else renders as JSON.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrLoginRequired):
			_ = response.Redirect(c, "/login")
		case errors.Is(err, domainerrors.ErrNotFound), errors.Is(err, domainerrors.ErrForbidden):
			// Silent redirect: non-owners and probes for missing resources
			// get the same response, zero detail.
			_ = response.Redirect(c, response.FailureTarget(c))
		default:
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			// Unknown paths land on the root route.
			_ = response.Redirect(c, "/")

			return
		}

		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err.Error())
}
