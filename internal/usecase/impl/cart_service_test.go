package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofinds/internal/domain/entity"
)

func TestCartReconcile(t *testing.T) {
	t.Parallel()

	t.Run("drops stale ids preserving order and duplicates", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			ExistingIDsFn: func(_ context.Context, ids []uint) (map[uint]struct{}, error) {
				assert.ElementsMatch(t, []uint{5, 9, 7}, ids)

				return map[uint]struct{}{5: {}, 7: {}}, nil
			},
		}

		srv := NewCartService(productRepo, testLogger())

		cart, changed := srv.Reconcile(context.Background(), entity.Cart{5, 9, 5, 7, 9})
		assert.True(t, changed)
		assert.Equal(t, entity.Cart{5, 5, 7}, cart)
	})

	t.Run("fully live cart comes back unchanged", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			ExistingIDsFn: func(_ context.Context, _ []uint) (map[uint]struct{}, error) {
				return map[uint]struct{}{3: {}, 4: {}}, nil
			},
		}

		srv := NewCartService(productRepo, testLogger())

		cart, changed := srv.Reconcile(context.Background(), entity.Cart{3, 4, 3})
		assert.False(t, changed)
		assert.Equal(t, entity.Cart{3, 4, 3}, cart)
	})

	t.Run("empty cart never touches the store", func(t *testing.T) {
		t.Parallel()

		// No ExistingIDsFn set: a store call would panic.
		srv := NewCartService(&stubProductRepo{}, testLogger())

		cart, changed := srv.Reconcile(context.Background(), nil)
		assert.False(t, changed)
		assert.Empty(t, cart)
	})

	t.Run("store failure leaves the cart untouched", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			ExistingIDsFn: func(_ context.Context, _ []uint) (map[uint]struct{}, error) {
				return nil, assert.AnError
			},
		}

		srv := NewCartService(productRepo, testLogger())

		cart, changed := srv.Reconcile(context.Background(), entity.Cart{1, 2, 1})
		assert.False(t, changed)
		assert.Equal(t, entity.Cart{1, 2, 1}, cart)
	})
}

func TestCartView(t *testing.T) {
	t.Parallel()

	t.Run("resolves quantities and prunes stale ids", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			FindByIDsFn: func(_ context.Context, ids []uint) ([]entity.Product, error) {
				assert.ElementsMatch(t, []uint{5, 9, 7}, ids)

				return []entity.Product{
					{ID: 5, Title: "Lamp", Price: 20},
					{ID: 7, Title: "Sofa", Price: 150},
				}, nil
			},
		}

		srv := NewCartService(productRepo, testLogger())

		view, err := srv.View(context.Background(), entity.Cart{5, 9, 5, 7})
		require.NoError(t, err)

		require.Len(t, view.Lines, 2)
		assert.Equal(t, "Lamp", view.Lines[0].Product.Title)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, 1, view.Lines[1].Quantity)
		assert.Equal(t, 3, view.TotalItems)
		assert.True(t, view.Changed)
		assert.Equal(t, entity.Cart{5, 5, 7}, view.Cart)
	})

	t.Run("empty cart yields an empty view", func(t *testing.T) {
		t.Parallel()

		srv := NewCartService(&stubProductRepo{}, testLogger())

		view, err := srv.View(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Zero(t, view.TotalItems)
		assert.False(t, view.Changed)
	})
}
