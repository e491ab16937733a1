// Package handler contains the HTTP handlers for the application.
package handler

import (
	"echofinds/internal/domain/entity"
)

// View models keep persistence details (password hashes above all) out of
// responses.

type userView struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type productView struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	SellerName  string  `json:"sellerName,omitempty"`
}

type cartLineView struct {
	Product  productView `json:"product"`
	Quantity int         `json:"quantity"`
}

type orderView struct {
	OrderID  string        `json:"orderId"`
	PlacedAt int64         `json:"placedAt"`
	Products []productView `json:"products"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}

func toProductView(product entity.Product) productView {
	return productView{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		SellerName:  product.SellerName,
	}
}

func toProductViews(products []entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

func toOrderView(view entity.OrderView) orderView {
	return orderView{
		OrderID:  view.Ref.String(),
		PlacedAt: view.PlacedAt,
		Products: toProductViews(view.Products),
	}
}

func toOrderViews(views []entity.OrderView) []orderView {
	out := make([]orderView, 0, len(views))
	for _, v := range views {
		out = append(out, toOrderView(v))
	}

	return out
}
