// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"echofinds/internal/delivery/http/middleware"
	"echofinds/internal/delivery/http/response"
	"echofinds/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	account *handler.AccountHandler
	catalog *handler.CatalogHandler
	cart    *handler.CartHandler
	order   *handler.OrderHandler
	profile *handler.ProfileHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		account: params.AccountHandler,
		catalog: params.CatalogHandler,
		cart:    params.CartHandler,
		order:   params.OrderHandler,
		profile: params.ProfileHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
	})

	e.GET("/", r.account.Home)
	e.GET("/signup", r.account.SignupPage)
	e.POST("/signup", r.account.Signup)
	e.GET("/login", r.account.LoginPage)
	e.POST("/login", r.account.Login)
	e.GET("/logout", r.account.Logout)

	// Catalog, open to guests
	e.GET("/products", r.catalog.Browse)
	e.GET("/products/:id", r.catalog.Detail)

	// Cart and checkout, open to guests
	e.POST("/add_to_cart/:id", r.cart.AddByPath)
	e.POST("/add_to_cart", r.cart.AddByForm)
	e.POST("/remove_from_cart/:id", r.cart.Remove)
	e.GET("/cart", r.cart.View)
	e.POST("/checkout", r.order.Checkout)
	e.GET("/order_success", r.order.OrderSuccess)
	e.GET("/previous_purchases", r.order.History)

	// Routes that require an authenticated session
	authed := e.Group("", r.auth.RequireLogin)
	{
		authed.GET("/dashboard", r.catalog.Dashboard)
		authed.POST("/dashboard", r.catalog.Dashboard)
		authed.GET("/my_listings", r.catalog.MyListings)
		authed.GET("/add_product", r.catalog.AddProductPage)
		authed.POST("/add_product", r.catalog.AddProduct)
		authed.GET("/edit_product/:id", r.catalog.EditProductPage)
		authed.POST("/edit_product/:id", r.catalog.EditProduct)
		authed.POST("/delete_product/:id", r.catalog.DeleteProduct)
		authed.GET("/profile", r.profile.Get)
		authed.POST("/profile", r.profile.Update)
	}
}
