package postgres

import (
	"context"

	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/repository"
	"echofinds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product row and copies the generated id back.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its owner preloaded for the seller
// display name.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Preload("Owner").First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Search returns products matching the filter, newest first. The four query
// shapes (text and category, text only, category only, none) are mutually
// exclusive; LOWER/LIKE keeps the substring match case-insensitive on both
// postgres and the sqlite test store.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var productModels []*model.ProductModel
	if err := query.Order("id DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainSlice(productModels), nil
}

// Categories returns the distinct non-empty category names.
func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// FindByOwner returns all products listed by the given user.
func (repo *productRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error) {
	var productModels []*model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by owner")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByIDs returns the products whose ids are in the given set.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomainSlice(productModels), nil
}

// ExistingIDs reports which of the given ids still have a product row.
func (repo *productRepository) ExistingIDs(ctx context.Context, ids []uint) (map[uint]struct{}, error) {
	if len(ids) == 0 {
		return map[uint]struct{}{}, nil
	}

	var existing []uint
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product ids")
	}

	set := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		set[id] = struct{}{}
	}

	return set, nil
}

// Update persists changed product fields.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":       product.Title,
			"description": product.Description,
			"category":    product.Category,
			"price":       product.Price,
			"image_url":   product.ImageURL,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row. order_items rows referencing it stay put.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		OwnerID:     data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Owner != nil {
		product.SellerName = data.Owner.Username
	}

	return product
}

func toProductDomainSlice(models []*model.ProductModel) []entity.Product {
	products := make([]entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, *toProductDomain(m))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		UserID:      data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
	}
}
