package impl

import (
	"context"
	"log/slog"

	deliverycontext "echofinds/internal/delivery/context"
	"echofinds/internal/domain/entity"
	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/domain/repository"
	"echofinds/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reconcile drops cart ids whose products no longer exist. Availability
// wins over strict consistency here: when the store cannot be reached the
// cart is returned unchanged and the request continues.
func (srv *cartService) Reconcile(ctx context.Context, cart entity.Cart) (entity.Cart, bool) {
	if len(cart) == 0 {
		return cart, false
	}

	existing, err := srv.productRepo.ExistingIDs(ctx, cart.UniqueIDs())
	if err != nil {
		srv.log(ctx).Warn("Cart reconciliation skipped", slog.Any("error", err))

		return cart, false
	}

	filtered, changed := cart.Filter(func(id uint) bool {
		_, ok := existing[id]

		return ok
	})
	if !changed {
		return cart, false
	}

	srv.log(ctx).Debug("Cart reconciled",
		slog.Int("before", len(cart)),
		slog.Int("after", len(filtered)))

	return filtered, true
}

// View resolves the cart to product lines with quantities, pruning stale
// ids along the way.
func (srv *cartService) View(ctx context.Context, cart entity.Cart) (*usecase.CartView, error) {
	if len(cart) == 0 {
		return &usecase.CartView{Cart: cart}, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, cart.UniqueIDs())
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to resolve cart")
	}

	counts := cart.Quantities()
	lines := make([]entity.CartLine, 0, len(products))
	totalItems := 0
	live := make(map[uint]struct{}, len(products))
	for _, p := range products {
		qty := counts[p.ID]
		lines = append(lines, entity.CartLine{Product: p, Quantity: qty})
		totalItems += qty
		live[p.ID] = struct{}{}
	}

	pruned, changed := cart.Filter(func(id uint) bool {
		_, ok := live[id]

		return ok
	})

	return &usecase.CartView{
		Lines:      lines,
		TotalItems: totalItems,
		Cart:       pruned,
		Changed:    changed,
	}, nil
}
