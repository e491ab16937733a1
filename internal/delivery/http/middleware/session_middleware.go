package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"echofinds/config"
	"echofinds/internal/delivery/http/session"
	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/service"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware decodes the signed session cookie, reconciles the cart
// against live products, and re-issues the cookie when the session changed.
// Tampered, expired, or missing cookies start a fresh session.
type SessionMiddleware struct {
	codec  service.SessionCodec
	cartUC usecase.CartUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(codec service.SessionCodec, cartUC usecase.CartUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		codec:  codec,
		cartUC: cartUC,
		cfg:    cfg,
		logger: logger,
	}
}

// Process runs on every route. The cookie rewrite is registered as a
// response Before hook because redirects commit the response inside the
// handler, after which headers can no longer change.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := &session.State{Session: m.decode(c)}

		if len(state.Session.Cart) > 0 {
			cart, changed := m.cartUC.Reconcile(c.Request().Context(), state.Session.Cart)
			if changed {
				state.Session.Cart = cart
				state.MarkDirty()
			}
		}

		session.Set(c, state)

		c.Response().Before(func() {
			if !state.Dirty() {
				return
			}
			if err := m.writeCookie(c, state.Session); err != nil {
				m.logger.Error("Failed to write session cookie", slog.Any("error", err))
			}
		})

		return next(c)
	}
}

func (m *SessionMiddleware) decode(c echo.Context) *entity.Session {
	cookie, err := c.Cookie(m.codec.CookieName())
	if err != nil || cookie.Value == "" {
		return &entity.Session{}
	}

	sess, err := m.codec.Decode(cookie.Value)
	if err != nil {
		m.logger.Debug("Discarding invalid session cookie", slog.Any("error", err))

		return &entity.Session{}
	}

	return sess
}

func (m *SessionMiddleware) writeCookie(c echo.Context, sess *entity.Session) error {
	value, err := m.codec.Encode(sess)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     m.codec.CookieName(),
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.cfg.Session.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
