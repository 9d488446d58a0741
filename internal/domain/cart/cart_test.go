//go:build unit

package cart_test

import (
	"context"
	"sync"
	"testing"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"
	"furnistore/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type approvingGateway struct {
	calls   int
	amounts []float64
}

func (g *approvingGateway) ProcessPayment(_ context.Context, _ *user.User, amount float64) bool {
	g.calls++
	g.amounts = append(g.amounts, amount)
	return true
}

type decliningGateway struct{}

func (decliningGateway) ProcessPayment(context.Context, *user.User, float64) bool {
	return false
}

func newBuyer(t *testing.T) *user.User {
	t.Helper()
	buyer, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	return buyer
}

func stockItem(t *testing.T, inv *inventory.Inventory, b *builder.ItemBuilder) *catalog.Item {
	t.Helper()
	item, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(item))
	return item
}

func TestCartMutations(t *testing.T) {
	t.Run("add and remove round trip", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithQuantity(10))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 3))
		assert.Equal(t, 3, c.Quantity(item))

		require.NoError(t, c.RemoveItem(item, 1))
		assert.Equal(t, 2, c.Quantity(item))

		require.NoError(t, c.RemoveItem(item, 5))
		assert.Equal(t, 0, c.Len())

		assert.ErrorIs(t, c.RemoveItem(item, 1), cart.ErrItemNotInCart)
	})

	t.Run("quantity validation", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder())
		c := cart.New(newBuyer(t), inv)

		assert.ErrorIs(t, c.AddItem(item, 0), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(item, -1), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.RemoveItem(item, 0), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(nil, 1), cart.ErrItemNotInCart)
	})

	t.Run("stock check covers accumulated cart quantity", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithQuantity(5))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 3))
		err := c.AddItem(item, 4)
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 3, c.Quantity(item))

		require.NoError(t, c.AddItem(item, 2))
		assert.Equal(t, 5, c.Quantity(item))
	})

	t.Run("item missing from inventory", func(t *testing.T) {
		inv := inventory.New()
		loose, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		c := cart.New(newBuyer(t), inv)

		assert.ErrorIs(t, c.AddItem(loose, 1), inventory.ErrItemNotFound)
	})

	t.Run("set discount", func(t *testing.T) {
		c := cart.New(newBuyer(t), inventory.New())

		require.NoError(t, c.SetDiscount(catalog.VIPDiscount))
		assert.Equal(t, catalog.VIPDiscount, c.Discount())

		assert.ErrorIs(t, c.SetDiscount(catalog.Discount("half-off")), catalog.ErrInvalidDiscount)
		assert.Equal(t, catalog.VIPDiscount, c.Discount())
	})

	t.Run("clear drops entries and keeps the discount", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithQuantity(10))
		c := cart.New(newBuyer(t), inv)
		require.NoError(t, c.SetDiscount(catalog.VIPDiscount))
		require.NoError(t, c.AddItem(item, 3))

		c.Clear()

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, catalog.VIPDiscount, c.Discount())
		assert.Equal(t, 10, item.AvailableQuantity())
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("vip cart discount with tax", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(100.0))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 1))
		require.NoError(t, c.SetDiscount(catalog.VIPDiscount))

		// 100 * 0.80 * 1.18 = 94.40
		assert.InDelta(t, 94.40, c.Total(18), 1e-9)
	})

	t.Run("item and cart discounts stack in stages", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(200.0).WithDiscount("holiday"))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 2))
		require.NoError(t, c.SetDiscount(catalog.ClearanceDiscount))

		// per item: 200 * 0.85 = 170; subtotal 340; cart: 340 * 0.70 = 238
		assert.InDelta(t, 238.0, c.Total(0), 1e-9)
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		c := cart.New(newBuyer(t), inventory.New())
		assert.InDelta(t, 0.0, c.Total(18), 1e-9)
	})

	t.Run("negative tax acts as rebate", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(100.0))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 1))
		assert.InDelta(t, 90.0, c.Total(-10), 1e-9)
	})

	t.Run("total rounds to two decimals", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(33.33))
		c := cart.New(newBuyer(t), inv)

		require.NoError(t, c.AddItem(item, 1))
		// unit price rounds to one decimal first: 33.33 -> 33.3, then 33.3 * 1.18 = 39.294
		assert.InDelta(t, 39.29, c.Total(18), 1e-9)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("successful checkout", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(100.0).WithQuantity(5))
		buyer := newBuyer(t)
		c := cart.New(buyer, inv)
		gateway := &approvingGateway{}

		require.NoError(t, c.AddItem(item, 2))
		o, err := c.Checkout(context.Background(), gateway, 18)
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, buyer.Email().Value(), o.BuyerEmail())
		assert.InDelta(t, 236.0, o.Total(), 1e-9)
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, "Test Chair", o.Lines()[0].Name)
		assert.Equal(t, 2, o.Lines()[0].Quantity)
		assert.InDelta(t, 100.0, o.Lines()[0].UnitPrice, 1e-9)

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)

		assert.Equal(t, 0, c.Len())
		require.Len(t, buyer.Orders(), 1)
		assert.Equal(t, o.ID(), buyer.Orders()[0].ID())
		assert.Equal(t, 1, gateway.calls)
	})

	t.Run("empty cart", func(t *testing.T) {
		c := cart.New(newBuyer(t), inventory.New())

		_, err := c.Checkout(context.Background(), &approvingGateway{}, 18)
		assert.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("zero total is rejected before payment", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithPrice(0))
		c := cart.New(newBuyer(t), inv)
		gateway := &approvingGateway{}

		require.NoError(t, c.AddItem(item, 1))
		_, err := c.Checkout(context.Background(), gateway, 18)
		assert.ErrorIs(t, err, cart.ErrZeroTotal)
		assert.Equal(t, 0, gateway.calls)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("declined payment leaves everything untouched", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithQuantity(5))
		buyer := newBuyer(t)
		c := cart.New(buyer, inv)

		require.NoError(t, c.AddItem(item, 2))
		_, err := c.Checkout(context.Background(), decliningGateway{}, 18)
		assert.ErrorIs(t, err, cart.ErrPaymentFailed)

		qty, qerr := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, qerr)
		assert.Equal(t, 5, qty)
		assert.Equal(t, 2, c.Quantity(item))
		assert.Empty(t, buyer.Orders())
	})

	t.Run("stock shrank after add", func(t *testing.T) {
		inv := inventory.New()
		item := stockItem(t, inv, builder.NewItemBuilder().WithQuantity(5))
		c := cart.New(newBuyer(t), inv)
		gateway := &approvingGateway{}

		require.NoError(t, c.AddItem(item, 3))
		require.NoError(t, inv.UpdateQuantity("Test Chair", catalog.KindChair, 1))

		_, err := c.Checkout(context.Background(), gateway, 18)
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 0, gateway.calls)
	})

	t.Run("concurrent checkouts never oversell", func(t *testing.T) {
		inv := inventory.New()
		stockItem(t, inv, builder.NewItemBuilder().WithQuantity(5))

		carts := make([]*cart.Cart, 4)
		for i := range carts {
			buyer, err := builder.NewUserBuilder().WithEmail(string(rune('a'+i)) + "@example.com").BuildDomain()
			require.NoError(t, err)
			c := cart.New(buyer, inv)
			item, err := inv.Find("Test Chair", catalog.KindChair)
			require.NoError(t, err)
			require.NoError(t, c.AddItem(item, 3))
			carts[i] = c
		}

		var wg sync.WaitGroup
		results := make([]error, len(carts))
		for i, c := range carts {
			wg.Add(1)
			go func(i int, c *cart.Cart) {
				defer wg.Done()
				_, results[i] = c.Checkout(context.Background(), &approvingGateway{}, 18)
			}(i, c)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
			}
		}
		assert.Equal(t, 1, succeeded)

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 2, qty)
	})
}

func TestCartObserver(t *testing.T) {
	type seen struct {
		change cart.ChangeType
		item   string
	}
	var mu sync.Mutex
	var events []seen

	inv := inventory.New()
	item := stockItem(t, inv, builder.NewItemBuilder())
	c := cart.New(newBuyer(t), inv)
	c.RegisterObserver(observerFunc(func(_ *cart.Cart, change cart.ChangeType, it *catalog.Item) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, seen{change: change, item: it.Name()})
	}))

	require.NoError(t, c.AddItem(item, 1))
	require.NoError(t, c.RemoveItem(item, 1))
	require.NoError(t, c.AddItem(item, 1))
	c.Clear()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 4)
	assert.Equal(t, seen{change: cart.ChangeAdded, item: "Test Chair"}, events[0])
	assert.Equal(t, seen{change: cart.ChangeRemoved, item: "Test Chair"}, events[1])
	assert.Equal(t, seen{change: cart.ChangeAdded, item: "Test Chair"}, events[2])
	assert.Equal(t, seen{change: cart.ChangeRemoved, item: "Test Chair"}, events[3])
}

type observerFunc func(c *cart.Cart, change cart.ChangeType, item *catalog.Item)

func (f observerFunc) Notify(c *cart.Cart, change cart.ChangeType, item *catalog.Item) {
	f(c, change, item)
}
