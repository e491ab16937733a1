package impl

import (
	"context"
	"log/slog"

	deliverycontext "echofinds/internal/delivery/context"
	"echofinds/internal/domain/entity"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/domain/repository"
	"echofinds/internal/domain/service"
	"echofinds/internal/errors"
	"echofinds/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	images      service.ImageStore
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(productRepo repository.ProductRepository, images service.ImageStore, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		images:      images,
		logger:      logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse searches the catalog and returns the category set alongside.
func (srv *catalogService) Browse(ctx context.Context, query, category string) (*usecase.BrowseOutput, error) {
	products, err := srv.productRepo.Search(ctx, repository.ProductFilter{
		Query:    query,
		Category: category,
	})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to search products")
	}

	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list categories")
	}

	return &usecase.BrowseOutput{Products: products, Categories: categories}, nil
}

// Detail returns one product with its seller name.
func (srv *catalogService) Detail(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to load product")
	}

	return product, nil
}

// MyListings returns the products owned by the given user.
func (srv *catalogService) MyListings(ctx context.Context, ownerID uint) ([]entity.Product, error) {
	products, err := srv.productRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load listings")
	}

	return products, nil
}

// AddProduct stores the optional image and creates the listing.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	imageName, err := srv.saveImage(input.OwnerID, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    imageName,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Uint64("productID", uint64(product.ID)),
		slog.Uint64("ownerID", uint64(input.OwnerID)))

	return product, nil
}

// EditProduct updates a listing after the ownership gate. The gate runs
// before anything is written, image file included, so a failed gate leaves
// zero traces.
func (srv *catalogService) EditProduct(ctx context.Context, input *usecase.EditProductInput) error {
	product, err := srv.loadOwned(ctx, input.ActorID, input.ProductID)
	if err != nil {
		return err
	}

	imageName := product.ImageURL
	if input.Image != nil {
		imageName, err = srv.saveImage(input.ActorID, input.Image)
		if err != nil {
			return err
		}
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.ImageURL = imageName

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return domainerrors.NewStoreError(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes a listing after the ownership gate. Image removal
// is best-effort: a filesystem failure is logged and the row still goes.
func (srv *catalogService) DeleteProduct(ctx context.Context, actorID, productID uint) error {
	product, err := srv.loadOwned(ctx, actorID, productID)
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		if err := srv.images.Remove(product.ImageURL); err != nil {
			srv.log(ctx).Warn("Failed to remove product image",
				slog.String("image", product.ImageURL),
				slog.Any("error", err))
		}
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound
		}

		return domainerrors.NewStoreError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted",
		slog.Uint64("productID", uint64(productID)),
		slog.Uint64("ownerID", uint64(actorID)))

	return nil
}

// loadOwned fetches a product and enforces the ownership gate.
func (srv *catalogService) loadOwned(ctx context.Context, actorID, productID uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to load product")
	}

	if product.OwnerID != actorID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

func (srv *catalogService) saveImage(ownerID uint, image *usecase.ImageUpload) (string, error) {
	if image == nil || image.Filename == "" {
		return "", nil
	}

	name, err := srv.images.Save(ownerID, image.Filename, image.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return name, nil
}
