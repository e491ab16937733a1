package usecase

import (
	"context"

	"echofinds/internal/domain/entity"
)

// BrowseOutput is a catalog page: the matching products plus the distinct
// category set for the filter UI.
type BrowseOutput struct {
	Products   []entity.Product
	Categories []string
}

// AddProductInput defines the data for a new listing.
type AddProductInput struct {
	OwnerID     uint
	Title       string
	Description string
	Category    string
	Price       float64
	Image       *ImageUpload // Optional.
}

// EditProductInput defines an edit to an existing listing. ActorID is the
// session user attempting the edit; only the owner gets through.
type EditProductInput struct {
	ActorID     uint
	ProductID   uint
	Title       string
	Description string
	Category    string
	Price       float64
	Image       *ImageUpload // Optional; the old image reference is kept when nil.
}

// CatalogUsecase defines product listing, search, and ownership-gated
// mutation.
type CatalogUsecase interface {
	// Browse searches with at most one compound filter (substring query
	// and/or exact category) and returns the category set alongside.
	Browse(ctx context.Context, query, category string) (*BrowseOutput, error)

	// Detail returns one product with its seller name, or ErrNotFound.
	Detail(ctx context.Context, id uint) (*entity.Product, error)

	// MyListings returns the products owned by the given user.
	MyListings(ctx context.Context, ownerID uint) ([]entity.Product, error)

	// AddProduct creates a listing owned by input.OwnerID, storing the
	// optional image first.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)

	// EditProduct updates a listing. Missing product → ErrNotFound;
	// non-owner actor → ErrForbidden; either way nothing is mutated.
	EditProduct(ctx context.Context, input *EditProductInput) error

	// DeleteProduct removes a listing under the same gating, best-effort
	// removing its image file first.
	DeleteProduct(ctx context.Context, actorID, productID uint) error
}
