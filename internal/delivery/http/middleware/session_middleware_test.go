package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofinds/config"
	"echofinds/internal/delivery/http/session"
	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/service"
	"echofinds/internal/infra/auth"
	"echofinds/internal/usecase"
)

type passthroughCartUC struct {
	reconcile func(cart entity.Cart) (entity.Cart, bool)
}

func (s *passthroughCartUC) Reconcile(_ context.Context, cart entity.Cart) (entity.Cart, bool) {
	if s.reconcile != nil {
		return s.reconcile(cart)
	}

	return cart, false
}

func (s *passthroughCartUC) View(_ context.Context, cart entity.Cart) (*usecase.CartView, error) {
	return &usecase.CartView{Cart: cart}, nil
}

func newSessionMiddleware(t *testing.T, cartUC usecase.CartUsecase) (*SessionMiddleware, service.SessionCodec) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "echofinds_session"
	cfg.Session.TTL = time.Hour

	codec, err := auth.NewSessionCodec(cfg)
	require.NoError(t, err)

	return NewSessionMiddleware(codec, cartUC, cfg, slog.New(slog.DiscardHandler)), codec
}

func runRequest(t *testing.T, m *SessionMiddleware, cookie string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if cookie != "" {
		req.Header.Set("Cookie", "echofinds_session="+cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Process(handler)(c))

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "echofinds_session" {
			return cookie
		}
	}

	return nil
}

func TestSessionMiddlewareRoundTrip(t *testing.T) {
	t.Parallel()

	m, codec := newSessionMiddleware(t, &passthroughCartUC{})

	// First request: no cookie, handler adds to the cart.
	rec := runRequest(t, m, "", func(c echo.Context) error {
		state := session.From(c)
		assert.False(t, state.Session.LoggedIn())
		state.Session.Cart = state.Session.Cart.Add(5)
		state.MarkDirty()

		return c.NoContent(http.StatusOK)
	})

	issued := sessionCookie(rec)
	require.NotNil(t, issued, "dirty session must issue a cookie")
	assert.True(t, issued.HttpOnly)

	// Second request: the cookie carries the cart back.
	rec = runRequest(t, m, issued.Value, func(c echo.Context) error {
		assert.Equal(t, entity.Cart{5}, session.From(c).Session.Cart)

		return c.NoContent(http.StatusOK)
	})
	assert.Nil(t, sessionCookie(rec), "clean session must not rewrite the cookie")

	// Sanity: the cookie value decodes to the same session.
	sess, err := codec.Decode(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, entity.Cart{5}, sess.Cart)
}

func TestSessionMiddlewareReconciliation(t *testing.T) {
	t.Parallel()

	t.Run("stale ids are pruned and the cookie rewritten", func(t *testing.T) {
		t.Parallel()

		cartUC := &passthroughCartUC{
			reconcile: func(cart entity.Cart) (entity.Cart, bool) {
				return entity.Cart{5}, true
			},
		}
		m, codec := newSessionMiddleware(t, cartUC)

		stale, err := codec.Encode(&entity.Session{Cart: entity.Cart{5, 9}})
		require.NoError(t, err)

		rec := runRequest(t, m, stale, func(c echo.Context) error {
			assert.Equal(t, entity.Cart{5}, session.From(c).Session.Cart)

			return c.NoContent(http.StatusOK)
		})

		rewritten := sessionCookie(rec)
		require.NotNil(t, rewritten)
		sess, err := codec.Decode(rewritten.Value)
		require.NoError(t, err)
		assert.Equal(t, entity.Cart{5}, sess.Cart)
	})

	t.Run("clean cart skips the rewrite", func(t *testing.T) {
		t.Parallel()

		m, codec := newSessionMiddleware(t, &passthroughCartUC{})

		clean, err := codec.Encode(&entity.Session{Cart: entity.Cart{5}})
		require.NoError(t, err)

		rec := runRequest(t, m, clean, func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		assert.Nil(t, sessionCookie(rec))
	})
}

func TestSessionMiddlewareTamperedCookie(t *testing.T) {
	t.Parallel()

	m, _ := newSessionMiddleware(t, &passthroughCartUC{})

	rec := runRequest(t, m, "garbage.cookie.value", func(c echo.Context) error {
		state := session.From(c)
		assert.False(t, state.Session.LoggedIn())
		assert.Empty(t, state.Session.Cart)

		return c.NoContent(http.StatusOK)
	})
	assert.Nil(t, sessionCookie(rec), "a discarded cookie starts a fresh, clean session")
}
