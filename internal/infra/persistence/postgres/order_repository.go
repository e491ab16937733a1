package postgres

import (
	"context"

	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/repository"
	"echofinds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row plus one item row per cart entry. Duplicate
// product ids are preserved; quantity is the repetition count. Callers run
// this inside the transaction manager so the rows commit together.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order, productIDs []uint) error {
	orderM := &model.OrderModel{
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
	}
	for _, pid := range productIDs {
		orderM.Items = append(orderM.Items, model.OrderItemModel{ProductID: pid})
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// FindByID returns the order only when it belongs to userID.
func (repo *orderRepository) FindByID(ctx context.Context, id uint, userID uint) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser returns the user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, *toOrderDomain(m))
	}

	return orders, nil
}

// ItemProducts joins order_items back to live product rows. Items whose
// product has been deleted are absent from the result, which is exactly
// the reconciliation behavior the read side promises.
func (repo *orderRepository) ItemProducts(ctx context.Context, orderID uint) ([]entity.Product, error) {
	var productModels []*model.ProductModel

	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve order items")
	}

	return toProductDomainSlice(productModels), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
