package repository

import (
	"context"

	"echofinds/internal/domain/entity"
)

// OrderRepository persists checkout records for authenticated users.
type OrderRepository interface {
	// Create inserts the order row plus one order_item per element of
	// productIDs, duplicates preserved, and fills in the generated order ID.
	Create(ctx context.Context, order *entity.Order, productIDs []uint) error

	// FindByID returns the order only when it belongs to userID, else
	// ErrOrderNotFound.
	FindByID(ctx context.Context, id uint, userID uint) (*entity.Order, error)

	// FindByUser returns the user's orders, newest first.
	FindByUser(ctx context.Context, userID uint) ([]entity.Order, error)

	// ItemProducts resolves an order's items against live product rows.
	// Items whose product has since been deleted are absent.
	ItemProducts(ctx context.Context, orderID uint) ([]entity.Product, error)
}
