package cart

import (
	"context"
	"testing"

	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ catalog.ProductFilter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func testProduct(t *testing.T, name, price string, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "Kitchen", decimal.RequireFromString(price), stock, "", "")
	require.NoError(t, err)
	return p
}

func TestCartServiceAdd(t *testing.T) {
	ctx := context.Background()
	kettle := testProduct(t, "Kettle", "30.00", 5)
	svc := NewCartService(newFakeProductRepo(kettle), zap.NewNop())

	t.Run("adds new line", func(t *testing.T) {
		lines, err := svc.Add(ctx, kettle.ID, 2)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("merges and clamps to stock", func(t *testing.T) {
		lines, err := svc.Add(ctx, kettle.ID, 10)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("unknown product is an error", func(t *testing.T) {
		_, err := svc.Add(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, kettle.ID, 0)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	kettle := testProduct(t, "Kettle", "30.00", 5)
	mug := testProduct(t, "Mug", "10.00", 20)
	svc := NewCartService(newFakeProductRepo(kettle, mug), zap.NewNop())

	_, err := svc.Add(ctx, kettle.ID, 2)
	require.NoError(t, err)

	t.Run("sets quantity with clamp", func(t *testing.T) {
		lines, err := svc.UpdateQuantity(ctx, kettle.ID, 99)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		lines, err := svc.UpdateQuantity(ctx, kettle.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("unknown product leaves cart untouched", func(t *testing.T) {
		_, err := svc.Add(ctx, mug.ID, 3)
		require.NoError(t, err)

		lines, err := svc.UpdateQuantity(ctx, uuid.New(), 7)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("product without a line leaves cart untouched", func(t *testing.T) {
		lines, err := svc.UpdateQuantity(ctx, kettle.ID, 4)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, mug.ID, lines[0].ProductID)
	})
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	kettle := testProduct(t, "Kettle", "30.00", 5)
	mug := testProduct(t, "Mug", "10.00", 20)
	svc := NewCartService(newFakeProductRepo(kettle, mug), zap.NewNop())

	_, err := svc.Add(ctx, kettle.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, mug.ID, 2)
	require.NoError(t, err)

	lines := svc.Remove(kettle.ID)
	require.Len(t, lines, 1)
	assert.Equal(t, mug.ID, lines[0].ProductID)

	// Removing an absent product is a no-op
	lines = svc.Remove(kettle.ID)
	assert.Len(t, lines, 1)

	svc.Clear()
	assert.True(t, svc.IsEmpty())
	assert.Zero(t, svc.ItemCount())
}

func TestCartServiceSummary(t *testing.T) {
	ctx := context.Background()
	kettle := testProduct(t, "Kettle", "25.00", 10)
	svc := NewCartService(newFakeProductRepo(kettle), zap.NewNop())

	_, err := svc.Add(ctx, kettle.ID, 2)
	require.NoError(t, err)

	summary := svc.Summary()
	assert.True(t, decimal.RequireFromString("50").Equal(summary.Subtotal))
	assert.True(t, decimal.RequireFromString("4").Equal(summary.Tax))
	assert.True(t, decimal.RequireFromString("54").Equal(summary.Total))
}

func TestCartServiceRestore(t *testing.T) {
	ctx := context.Background()
	kettle := testProduct(t, "Kettle", "30.00", 3)
	svc := NewCartService(newFakeProductRepo(kettle), zap.NewNop())

	err := svc.Restore(ctx, []RestoredLine{
		{ProductID: kettle.ID, Quantity: 10}, // clamps to current stock
		{ProductID: uuid.New(), Quantity: 2}, // missing product dropped
		{ProductID: kettle.ID, Quantity: 0},  // non-positive skipped
	})
	require.NoError(t, err)

	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}
