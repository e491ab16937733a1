package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "echofinds/internal/delivery/context"
	"echofinds/internal/domain/entity"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/domain/repository"
	"echofinds/internal/errors"
	"echofinds/internal/usecase"
)

// orderService implements the OrderUsecase interface. Persisted and guest
// orders share the OrderView read shape; only the resolution source
// differs.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the session cart into an order and clears the cart.
func (srv *orderService) Checkout(ctx context.Context, sess *entity.Session) (entity.OrderRef, error) {
	if len(sess.Cart) == 0 {
		return entity.OrderRef{}, domainerrors.ErrEmptyCart
	}

	timestamp := srv.now().Unix()

	if !sess.LoggedIn() {
		sess.AppendGuestOrder(sess.Cart, timestamp)
		sess.Cart = nil

		srv.log(ctx).Info("Guest checkout", slog.Int64("timestamp", timestamp))

		return entity.EphemeralRef(timestamp), nil
	}

	order := &entity.Order{UserID: sess.UserID, CreatedAt: timestamp}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order, sess.Cart)
	})
	if err != nil {
		return entity.OrderRef{}, domainerrors.NewStoreError(err, "failed to persist order")
	}

	sess.Cart = nil

	srv.log(ctx).Info("Checkout completed",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.Uint64("userID", uint64(sess.UserID)))

	return entity.PersistedRef(order.ID), nil
}

// OrderByRef resolves the order-success view for a reference string.
func (srv *orderService) OrderByRef(ctx context.Context, sess *entity.Session, ref string) (*entity.OrderView, error) {
	value, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || value <= 0 {
		return nil, domainerrors.ErrNotFound
	}

	if sess.LoggedIn() {
		return srv.persistedView(ctx, sess.UserID, uint(value))
	}

	guestOrder, ok := sess.GuestOrderByTimestamp(value)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}

	return srv.guestView(ctx, guestOrder)
}

// History returns previous purchases for the session.
func (srv *orderService) History(ctx context.Context, sess *entity.Session) ([]entity.OrderView, error) {
	if !sess.LoggedIn() {
		views := make([]entity.OrderView, 0, len(sess.Orders))
		for _, guestOrder := range sess.Orders {
			view, err := srv.guestView(ctx, guestOrder)
			if err != nil {
				return nil, err
			}
			views = append(views, *view)
		}

		return views, nil
	}

	orders, err := srv.orderRepo.FindByUser(ctx, sess.UserID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load orders")
	}

	views := make([]entity.OrderView, 0, len(orders))
	for _, order := range orders {
		products, err := srv.orderRepo.ItemProducts(ctx, order.ID)
		if err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to resolve order items")
		}
		views = append(views, entity.OrderView{
			Ref:      entity.PersistedRef(order.ID),
			PlacedAt: order.CreatedAt,
			Products: products,
		})
	}

	return views, nil
}

// persistedView loads one database-backed order scoped to its owner.
func (srv *orderService) persistedView(ctx context.Context, userID, orderID uint) (*entity.OrderView, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to load order")
	}

	products, err := srv.orderRepo.ItemProducts(ctx, order.ID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to resolve order items")
	}

	return &entity.OrderView{
		Ref:      entity.PersistedRef(order.ID),
		PlacedAt: order.CreatedAt,
		Products: products,
	}, nil
}

// guestView resolves a session order's items against live products.
// Deleted products vanish from the view, same as on the persisted path.
func (srv *orderService) guestView(ctx context.Context, guestOrder entity.GuestOrder) (*entity.OrderView, error) {
	view := &entity.OrderView{
		Ref:      entity.EphemeralRef(guestOrder.Timestamp),
		PlacedAt: guestOrder.Timestamp,
		Products: []entity.Product{},
	}
	if len(guestOrder.Items) == 0 {
		return view, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, guestOrder.Items)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to resolve guest order")
	}
	view.Products = products

	return view, nil
}
