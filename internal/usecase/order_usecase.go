package usecase

import (
	"context"

	"echofinds/internal/domain/entity"
)

// OrderUsecase handles checkout and order history for both authenticated
// users (persisted orders) and guests (session-only orders). All three
// operations mutate or read the session in place; the delivery layer
// persists the rewritten cookie afterwards.
type OrderUsecase interface {
	// Checkout turns the session cart into an order: a database row (plus
	// items) for an authenticated session, a session record for a guest.
	// The cart is cleared on success. An empty cart yields ErrEmptyCart.
	Checkout(ctx context.Context, sess *entity.Session) (entity.OrderRef, error)

	// OrderByRef resolves the order-success view for a reference string: a
	// persisted order id for authenticated sessions, a guest timestamp
	// otherwise. Unknown or foreign references yield ErrNotFound.
	OrderByRef(ctx context.Context, sess *entity.Session, ref string) (*entity.OrderView, error)

	// History returns previous purchases: persisted orders newest first
	// for authenticated sessions, the session's guest orders otherwise.
	History(ctx context.Context, sess *entity.Session) ([]entity.OrderView, error)
}
