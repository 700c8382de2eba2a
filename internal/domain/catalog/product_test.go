package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromFloat(6.50), 24, "/images/sourdough.jpg", "Stone-baked sourdough")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Sourdough Loaf", product.Name)
		assert.Equal(t, "Bakery", product.Category)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(6.50)))
		assert.Equal(t, 24, product.StockQuantity)
		assert.NotEmpty(t, product.ID)
		assert.Empty(t, product.Reviews)
		assert.Zero(t, product.Rating)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "Bakery", decimal.NewFromInt(1), 1, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with empty category", func(t *testing.T) {
		_, err := NewProduct("Sourdough Loaf", "  ", decimal.NewFromInt(1), 1, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromInt(-1), 1, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromInt(1), -1, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Stock quantity cannot be negative")
	})
}

func TestProductRating(t *testing.T) {
	product, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromFloat(6.50), 24, "", "")
	require.NoError(t, err)

	t.Run("accepts rating inside range", func(t *testing.T) {
		require.NoError(t, product.SetRating(4.8))
		assert.Equal(t, 4.8, product.Rating)
	})

	t.Run("rejects rating outside range", func(t *testing.T) {
		require.Error(t, product.SetRating(5.1))
		require.Error(t, product.SetRating(-0.1))
	})
}

func TestAddReview(t *testing.T) {
	product, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromFloat(6.50), 24, "", "")
	require.NoError(t, err)

	t.Run("attaches review to product", func(t *testing.T) {
		require.NoError(t, product.AddReview("Dana", "Excellent crust.", 5))
		require.Len(t, product.Reviews, 1)
		assert.Equal(t, product.ID, product.Reviews[0].ProductID)
		assert.Equal(t, 5, product.Reviews[0].Rating)
	})

	t.Run("rejects out-of-range review rating", func(t *testing.T) {
		require.Error(t, product.AddReview("Dana", "no stars", 0))
		require.Error(t, product.AddReview("Dana", "six stars", 6))
		assert.Len(t, product.Reviews, 1)
	})

	t.Run("rejects empty reviewer", func(t *testing.T) {
		require.Error(t, product.AddReview(" ", "anonymous", 3))
	})
}

func TestInStock(t *testing.T) {
	product, err := NewProduct("Sourdough Loaf", "Bakery", decimal.NewFromFloat(6.50), 0, "", "")
	require.NoError(t, err)
	assert.False(t, product.InStock())

	product.StockQuantity = 3
	assert.True(t, product.InStock())
}
