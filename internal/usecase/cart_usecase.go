package usecase

import (
	"context"

	"echofinds/internal/domain/entity"
)

// CartView is the resolved cart page: live products with quantities, the
// total item count, and the cart as it should be written back when stale
// ids were pruned.
type CartView struct {
	Lines      []entity.CartLine
	TotalItems int
	Cart       entity.Cart
	Changed    bool
}

// CartUsecase reconciles and resolves the session cart against the live
// product table. Adding and removing ids is pure session manipulation and
// stays in the delivery layer.
type CartUsecase interface {
	// Reconcile filters ids whose products no longer exist, preserving
	// order and duplicates. The changed result is false when the cart can
	// be left untouched. Store failures are swallowed: the cart comes back
	// unchanged and the request proceeds.
	Reconcile(ctx context.Context, cart entity.Cart) (entity.Cart, bool)

	// View resolves the cart to product lines with quantities, pruning
	// stale ids along the way.
	View(ctx context.Context, cart entity.Cart) (*CartView, error)
}
