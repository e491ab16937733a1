package repository

import (
	"context"

	"echofinds/internal/domain/entity"
)

// ProductFilter narrows a catalog search. Zero values mean "no filter";
// both set means the intersection of the two conditions.
type ProductFilter struct {
	// Query is matched case-insensitively as a substring of the title or
	// the description.
	Query string
	// Category is matched exactly.
	Category string
}

// ProductRepository persists product listings.
type ProductRepository interface {
	// Create inserts a new product and fills in the generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns the product with its seller name populated, or
	// ErrProductNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// Search returns products matching the filter, newest first.
	Search(ctx context.Context, filter ProductFilter) ([]entity.Product, error)

	// Categories returns the distinct non-empty category names.
	Categories(ctx context.Context) ([]string, error)

	// FindByOwner returns all products listed by the given user.
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error)

	// FindByIDs returns the products whose ids are in the given set. Ids
	// without a live row are silently absent from the result.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)

	// ExistingIDs reports which of the given ids still have a product row.
	ExistingIDs(ctx context.Context, ids []uint) (map[uint]struct{}, error)

	// Update persists changed product fields.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product row. Historical order_items keep their
	// (now dangling) product reference.
	Delete(ctx context.Context, id uint) error
}
