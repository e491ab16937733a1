package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"echofinds/internal/delivery/http/response"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/errors"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/11", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	t.Run("login required redirects to the login page", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(domainerrors.ErrLoginRequired, c)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("not found redirects to the declared target", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		response.RedirectOnFailure(c, "/products")
		m.HandleHTTPError(domainerrors.ErrNotFound, c)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("forbidden behaves exactly like not found", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		response.RedirectOnFailure(c, "/dashboard")
		m.HandleHTTPError(domainerrors.ErrForbidden, c)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("silent failures default to the root route", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(domainerrors.ErrNotFound, c)

		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("wrapped taxonomy errors still map", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(errors.WithStack(domainerrors.ErrLoginRequired), c)

		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("other taxonomy kinds render as JSON with detail", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(domainerrors.NewStoreError(errors.New("connection refused"), "failed to update account"), c)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
		assert.Contains(t, rec.Body.String(), "connection refused")
	})

	t.Run("unknown routes redirect home", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unexpected errors are masked as internal", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorContext(t)
		m.HandleHTTPError(errors.New("boom"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	})
}
