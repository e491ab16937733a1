package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"echofinds/internal/delivery/http/response"
	"echofinds/internal/delivery/http/session"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the session cart routes.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddByPath handles POST /add_to_cart/:id.
func (h *CartHandler) AddByPath(c echo.Context) error {
	response.RedirectOnFailure(c, "/products")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	h.addToCart(c, id)

	return response.Redirect(c, backTarget(c))
}

// AddByForm handles POST /add_to_cart with a product_id form field. A
// non-numeric id redirects without touching the cart.
func (h *CartHandler) AddByForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.FormValue("product_id"), 10, 32)
	if err != nil || id == 0 {
		return response.Redirect(c, backTarget(c))
	}

	h.addToCart(c, uint(id))

	return response.Redirect(c, backTarget(c))
}

// Remove handles POST /remove_from_cart/:id, dropping the first occurrence
// only so quantities decrement one at a time.
func (h *CartHandler) Remove(c echo.Context) error {
	response.RedirectOnFailure(c, "/cart")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	state := session.From(c)
	cart := state.Session.Cart.RemoveFirst(id)
	if len(cart) != len(state.Session.Cart) {
		state.Session.Cart = cart
		state.MarkDirty()
	}

	return response.Redirect(c, "/cart")
}

// View answers GET /cart with resolved lines and quantities, pruning ids
// whose products vanished.
func (h *CartHandler) View(c echo.Context) error {
	state := session.From(c)

	view, err := h.uc.View(c.Request().Context(), state.Session.Cart)
	if err != nil {
		return errors.WithStack(err)
	}

	if view.Changed {
		state.Session.Cart = view.Cart
		state.MarkDirty()
	}

	lines := make([]cartLineView, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineView{Product: toProductView(line.Product), Quantity: line.Quantity})
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"lines":      lines,
		"totalItems": view.TotalItems,
	}, "")
}

func (h *CartHandler) addToCart(c echo.Context, id uint) {
	state := session.From(c)
	state.Session.Cart = state.Session.Cart.Add(id)
	state.MarkDirty()
}

// backTarget sends the shopper back where they came from, defaulting to the
// catalog.
func backTarget(c echo.Context) string {
	if referer := c.Request().Referer(); referer != "" {
		return referer
	}

	return "/products"
}
