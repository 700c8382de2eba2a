package order

import (
	"testing"
	"time"

	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []cart.Line {
	return []cart.Line{
		{ProductID: uuid.New(), Name: "Olive Oil", UnitPrice: decimal.NewFromFloat(10.00), Quantity: 5, Image: "/images/oil.jpg"},
	}
}

func sampleAddress() identity.Address {
	return identity.Address{Street: "12 Rowan Lane", City: "Portsmouth", State: "NH", Zip: "03801", Country: "USA"}
}

func sampleSlot() DeliverySlot {
	return DeliverySlot{Date: "2026-09-01", Window: DeliveryWindows[0]}
}

func TestNew(t *testing.T) {
	userID := uuid.New()

	t.Run("builds pending order with computed totals", func(t *testing.T) {
		o, err := New(userID, sampleLines(), sampleAddress(), sampleSlot(), identity.PaymentCreditCard)
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, userID, o.UserID)
		assert.Equal(t, "50.00", o.Subtotal.StringFixed(2))
		assert.Equal(t, "4.00", o.Tax.StringFixed(2))
		assert.Equal(t, "54.00", o.Total.StringFixed(2))
		assert.Equal(t, time.Now().Format("2006-01-02"), o.OrderDate)
		require.Len(t, o.Lines, 1)
		assert.Equal(t, o.ID, o.Lines[0].OrderID)
	})

	t.Run("snapshots the delivery address", func(t *testing.T) {
		addr := sampleAddress()
		o, err := New(userID, sampleLines(), addr, sampleSlot(), identity.PaymentDebitCard)
		require.NoError(t, err)

		addr.Street = "rewritten later"
		assert.Equal(t, "12 Rowan Lane", o.Address.Street)
	})

	t.Run("fails without a user", func(t *testing.T) {
		_, err := New(uuid.Nil, sampleLines(), sampleAddress(), sampleSlot(), identity.PaymentCreditCard)
		require.Error(t, err)
	})

	t.Run("fails with an empty cart", func(t *testing.T) {
		_, err := New(userID, nil, sampleAddress(), sampleSlot(), identity.PaymentCreditCard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty cart")
	})

	t.Run("fails with malformed slot date", func(t *testing.T) {
		_, err := New(userID, sampleLines(), sampleAddress(), DeliverySlot{Date: "01/09/2026", Window: DeliveryWindows[0]}, identity.PaymentCreditCard)
		require.Error(t, err)
	})

	t.Run("fails with unknown delivery window", func(t *testing.T) {
		_, err := New(userID, sampleLines(), sampleAddress(), DeliverySlot{Date: "2026-09-01", Window: "03:00 AM - 05:00 AM"}, identity.PaymentCreditCard)
		require.Error(t, err)
	})

	t.Run("fails with unknown payment type", func(t *testing.T) {
		_, err := New(userID, sampleLines(), sampleAddress(), sampleSlot(), "Galleons")
		require.Error(t, err)
	})
}

func TestIsValidWindow(t *testing.T) {
	for _, w := range DeliveryWindows {
		assert.True(t, IsValidWindow(w), w)
	}
	assert.False(t, IsValidWindow("10:00 AM - 12:00 PM"))
}

func TestDeliverySlotValidate(t *testing.T) {
	require.NoError(t, sampleSlot().Validate())
	require.Error(t, DeliverySlot{Date: "2026-9-1", Window: DeliveryWindows[0]}.Validate())
	require.Error(t, DeliverySlot{Date: "2026-09-01", Window: ""}.Validate())
}
