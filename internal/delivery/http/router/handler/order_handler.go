package handler

import (
	"log/slog"
	"net/http"

	"echofinds/internal/delivery/http/response"
	"echofinds/internal/delivery/http/session"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/errors"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for checkout and order history.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout turns the cart into an order. Guests get a session-only record;
// authenticated users get a database row. An empty cart bounces back to
// /cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	state := session.From(c)

	ref, err := h.uc.Checkout(c.Request().Context(), state.Session)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmptyCart) {
			return response.Redirect(c, "/cart")
		}

		return errors.WithStack(err)
	}

	// Cart cleared, and for guests an order appended.
	state.MarkDirty()

	return response.Redirect(c, "/order_success?order_id="+ref.String())
}

// OrderSuccess answers GET /order_success?order_id=. Unknown or foreign
// references land on /products.
func (h *OrderHandler) OrderSuccess(c echo.Context) error {
	response.RedirectOnFailure(c, "/products")

	view, err := h.uc.OrderByRef(c.Request().Context(), session.From(c).Session, c.QueryParam("order_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(*view), "Order placed")
}

// History answers GET /previous_purchases for users and guests alike.
func (h *OrderHandler) History(c echo.Context) error {
	views, err := h.uc.History(c.Request().Context(), session.From(c).Session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(views), "")
}
