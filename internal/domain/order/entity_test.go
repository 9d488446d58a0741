//go:build unit

package order_test

import (
	"testing"

	"furnistore/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.New(
		"buyer@example.com",
		"1 Test Street",
		"Credit Card",
		[]order.Line{{Name: "Test Chair", Quantity: 2, UnitPrice: 100.0}},
		236.0,
	)
	require.NoError(t, err)
	return o
}

func TestNew(t *testing.T) {
	t.Run("starts pending with a fresh id", func(t *testing.T) {
		o := newOrder(t)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.NotZero(t, o.ID())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		_, err := order.New("buyer@example.com", "1 Test Street", "Credit Card", nil, 0)
		assert.ErrorIs(t, err, order.ErrNoLines)
	})

	t.Run("detaches from the caller's line slice", func(t *testing.T) {
		lines := []order.Line{{Name: "Test Chair", Quantity: 1, UnitPrice: 50.0}}
		o, err := order.New("buyer@example.com", "1 Test Street", "Credit Card", lines, 59.0)
		require.NoError(t, err)

		lines[0].Quantity = 99
		assert.Equal(t, 1, o.Lines()[0].Quantity)

		got := o.Lines()
		got[0].Name = "tampered"
		assert.Equal(t, "Test Chair", o.Lines()[0].Name)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("pending to completed to delivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Complete())
		assert.Equal(t, order.StatusCompleted, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("complete twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Complete())
		assert.ErrorIs(t, o.Complete(), order.ErrInvalidTransition)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("deliver a pending order", func(t *testing.T) {
		o := newOrder(t)
		assert.ErrorIs(t, o.MarkDelivered(), order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("deliver twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Complete())
		require.NoError(t, o.MarkDelivered())
		assert.ErrorIs(t, o.MarkDelivered(), order.ErrInvalidTransition)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "delivered"} {
		s, err := order.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := order.NewStatus("shipped")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
