package handler

import (
	"log/slog"
	"net/http"

	"echofinds/internal/delivery/http/response"
	"echofinds/internal/delivery/http/session"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for browsing and listing management.
type CatalogHandler struct {
	uc        usecase.CatalogUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:        uc,
		profileUC: profileUC,
		logger:    logger,
	}
}

type productForm struct {
	Title       string  `form:"title" json:"title" validate:"required,max=128"`
	Description string  `form:"description" json:"description"`
	Category    string  `form:"category" json:"category" validate:"required,max=64"`
	Price       float64 `form:"price" json:"price" validate:"gte=0"`
}

// Browse answers GET /products with at most one compound filter.
func (h *CatalogHandler) Browse(c echo.Context) error {
	out, err := h.uc.Browse(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"products":   toProductViews(out.Products),
		"categories": out.Categories,
	}, "")
}

// Detail answers GET /products/:id. Missing products land on /products.
func (h *CatalogHandler) Detail(c echo.Context) error {
	response.RedirectOnFailure(c, "/products")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(*product), "")
}

// Dashboard answers GET /dashboard: the current account plus the whole
// catalog, newest first.
func (h *CatalogHandler) Dashboard(c echo.Context) error {
	sess := session.From(c).Session

	user, err := h.profileUC.Get(c.Request().Context(), sess.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Browse(c.Request().Context(), "", "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user":     toUserView(user),
		"products": toProductViews(out.Products),
	}, "")
}

// MyListings answers GET /my_listings.
func (h *CatalogHandler) MyListings(c echo.Context) error {
	sess := session.From(c).Session

	products, err := h.uc.MyListings(c.Request().Context(), sess.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// AddProductPage answers GET /add_product with the category set for the
// form.
func (h *CatalogHandler) AddProductPage(c echo.Context) error {
	out, err := h.uc.Browse(c.Request().Context(), "", "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"categories": out.Categories}, "Add product")
}

// AddProduct handles the multipart listing form.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	image, cleanup, err := formImage(c, "image")
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = h.uc.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		OwnerID:     session.From(c).Session.UserID,
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Price:       form.Price,
		Image:       image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, "/products")
}

// EditProductPage answers GET /edit_product/:id, ownership gated like the
// POST.
func (h *CatalogHandler) EditProductPage(c echo.Context) error {
	response.RedirectOnFailure(c, "/dashboard")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if product.OwnerID != session.From(c).Session.UserID {
		return domainerrors.ErrForbidden
	}

	return response.Success(c, http.StatusOK, toProductView(*product), "")
}

// EditProduct handles the multipart edit form. Non-owners and missing
// products redirect silently with zero mutation.
func (h *CatalogHandler) EditProduct(c echo.Context) error {
	response.RedirectOnFailure(c, "/dashboard")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var form productForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	image, cleanup, err := formImage(c, "image")
	if err != nil {
		return err
	}
	defer cleanup()

	err = h.uc.EditProduct(c.Request().Context(), &usecase.EditProductInput{
		ActorID:     session.From(c).Session.UserID,
		ProductID:   id,
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Price:       form.Price,
		Image:       image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, "/dashboard")
}

// DeleteProduct handles POST /delete_product/:id under the same gating.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	response.RedirectOnFailure(c, "/dashboard")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actorID := session.From(c).Session.UserID
	if err := h.uc.DeleteProduct(c.Request().Context(), actorID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, "/dashboard")
}
