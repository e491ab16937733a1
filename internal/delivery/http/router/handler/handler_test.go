package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"echofinds/internal/delivery/http/session"
	"echofinds/internal/delivery/http/validator"
	"echofinds/internal/domain/entity"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newFormContext builds an echo context around a form POST, wiring the
// validator and a session state the way the server middleware would.
func newFormContext(method, target string, form url.Values, sess *entity.Session) (echo.Context, *httptest.ResponseRecorder, *session.State) {
	e := echo.New()
	e.Validator = validator.New()

	var body string
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if sess == nil {
		sess = &entity.Session{}
	}
	state := &session.State{Session: sess}
	session.Set(c, state)

	return c, rec, state
}

type stubAccountUC struct {
	SignupFn func(ctx context.Context, input *usecase.SignupInput) (*entity.User, error)
	LoginFn  func(ctx context.Context, input *usecase.LoginInput) (*entity.User, error)
}

func (s *stubAccountUC) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	return s.SignupFn(ctx, input)
}

func (s *stubAccountUC) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	return s.LoginFn(ctx, input)
}

type stubCartUC struct {
	ReconcileFn func(ctx context.Context, cart entity.Cart) (entity.Cart, bool)
	ViewFn      func(ctx context.Context, cart entity.Cart) (*usecase.CartView, error)
}

func (s *stubCartUC) Reconcile(ctx context.Context, cart entity.Cart) (entity.Cart, bool) {
	return s.ReconcileFn(ctx, cart)
}

func (s *stubCartUC) View(ctx context.Context, cart entity.Cart) (*usecase.CartView, error) {
	return s.ViewFn(ctx, cart)
}

type stubOrderUC struct {
	CheckoutFn   func(ctx context.Context, sess *entity.Session) (entity.OrderRef, error)
	OrderByRefFn func(ctx context.Context, sess *entity.Session, ref string) (*entity.OrderView, error)
	HistoryFn    func(ctx context.Context, sess *entity.Session) ([]entity.OrderView, error)
}

func (s *stubOrderUC) Checkout(ctx context.Context, sess *entity.Session) (entity.OrderRef, error) {
	return s.CheckoutFn(ctx, sess)
}

func (s *stubOrderUC) OrderByRef(ctx context.Context, sess *entity.Session, ref string) (*entity.OrderView, error) {
	return s.OrderByRefFn(ctx, sess, ref)
}

func (s *stubOrderUC) History(ctx context.Context, sess *entity.Session) ([]entity.OrderView, error) {
	return s.HistoryFn(ctx, sess)
}

func redirectedTo(rec *httptest.ResponseRecorder, target string) bool {
	return rec.Code == http.StatusFound && rec.Header().Get(echo.HeaderLocation) == target
}
