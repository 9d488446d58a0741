package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrZeroTotal       = errors.New("order total is zero")
	ErrPaymentFailed   = errors.New("payment failed")
)

// maxCartDiscountPercent caps the cart-wide strategy at the same ceiling as
// item-level discounts. No type bonus applies at this stage.
const maxCartDiscountPercent = 50

// PaymentGateway is the single yes/no payment capability a checkout invokes.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, buyer *user.User, amount float64) bool
}

// Entry is one cart position.
type Entry struct {
	Item     *catalog.Item
	Quantity int
}

// Cart accumulates a buyer's selections and validates every mutation against
// the inventory it is bound to. The stock check reads live inventory state,
// not a reservation; checkout re-validates under the inventory lock.
type Cart struct {
	mu        sync.Mutex
	buyer     *user.User
	inv       *inventory.Inventory
	items     map[*catalog.Item]int
	discount  catalog.Discount
	observers []Observer
}

func New(buyer *user.User, inv *inventory.Inventory) *Cart {
	return &Cart{
		buyer:    buyer,
		inv:      inv,
		items:    make(map[*catalog.Item]int),
		discount: catalog.NoDiscount,
	}
}

func (c *Cart) Buyer() *user.User { return c.buyer }

func (c *Cart) RegisterObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// AddItem accumulates quantity for the inventory's item registered under the
// incoming item's (kind, name). The stock check covers what the cart already
// holds, so two adds cannot together exceed the stock seen at call time.
func (c *Cart) AddItem(item *catalog.Item, quantity int) error {
	if item == nil {
		return ErrItemNotInCart
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	stocked, err := c.inv.Find(item.Name(), item.Kind())
	if err != nil {
		return err
	}

	c.mu.Lock()
	available, err := c.inv.AvailableQuantity(stocked.Name(), stocked.Kind())
	if err != nil {
		c.mu.Unlock()
		return err
	}
	requested := c.items[stocked] + quantity
	if available < requested {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q has %d available, %d requested",
			inventory.ErrInsufficientStock, stocked.Name(), available, requested)
	}
	c.items[stocked] = requested
	observers := c.snapshotObserversLocked()
	c.mu.Unlock()

	c.dispatch(observers, ChangeAdded, stocked)
	return nil
}

// RemoveItem decrements the entry, deleting it entirely once the requested
// quantity covers what the cart holds.
func (c *Cart) RemoveItem(item *catalog.Item, quantity int) error {
	if item == nil {
		return ErrItemNotInCart
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	held, ok := c.items[item]
	if !ok {
		c.mu.Unlock()
		return ErrItemNotInCart
	}
	if held <= quantity {
		delete(c.items, item)
	} else {
		c.items[item] = held - quantity
	}
	observers := c.snapshotObserversLocked()
	c.mu.Unlock()

	c.dispatch(observers, ChangeRemoved, item)
	return nil
}

// Clear drops every entry. The cart-wide discount stays with the buyer's
// session.
func (c *Cart) Clear() {
	c.mu.Lock()
	dropped := c.items
	c.items = make(map[*catalog.Item]int)
	observers := c.snapshotObserversLocked()
	c.mu.Unlock()

	for item := range dropped {
		c.dispatch(observers, ChangeRemoved, item)
	}
}

// SetDiscount replaces the cart-wide strategy applied at the total stage,
// after per-item discounts.
func (c *Cart) SetDiscount(d catalog.Discount) error {
	if !d.IsValid() {
		return catalog.ErrInvalidDiscount
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = d
	return nil
}

func (c *Cart) Discount() catalog.Discount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discount
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Quantity reports how many units of the item the cart holds.
func (c *Cart) Quantity(item *catalog.Item) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[item]
}

// Entries returns a snapshot of the cart's positions.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]Entry, 0, len(c.items))
	for item, qty := range c.items {
		entries = append(entries, Entry{Item: item, Quantity: qty})
	}
	return entries
}

// Total prices the cart in two discount stages and one tax pass: per-item
// discounted unit prices (each item's own strategy) summed, the cart-wide
// strategy applied to the subtotal with the same 50% cap, then tax, rounded
// to 2 decimals.
func (c *Cart) Total(taxPercent float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked(taxPercent)
}

func (c *Cart) totalLocked(taxPercent float64) float64 {
	subtotal := 0.0
	for item, qty := range c.items {
		subtotal += item.DiscountedUnitPrice(item.Discount()) * float64(qty)
	}

	cartPercent := math.Min(c.discount.Percentage(), maxCartDiscountPercent)
	result := subtotal * (1 - cartPercent/100)
	result *= 1 + taxPercent/100
	return math.Round(result*100) / 100
}

// Checkout converts the cart into a completed order: empty check, stock
// validation, pricing, payment, stock deduction, order construction, history
// append, cart clear. Validation through deduction runs inside one inventory
// critical section, so concurrent checkouts cannot both consume the same
// unit of stock. Any failure before deduction leaves inventory, cart, and
// buyer history untouched.
func (c *Cart) Checkout(ctx context.Context, gateway PaymentGateway, taxPercent float64) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	var placed *order.Order
	err := c.inv.Within(func(tx *inventory.Tx) error {
		for item, qty := range c.items {
			available, err := tx.Available(item.Name(), item.Kind())
			if err != nil {
				return fmt.Errorf("%w: %q", inventory.ErrItemNotFound, item.Name())
			}
			if available < qty {
				return fmt.Errorf("%w: %q has %d available, %d requested",
					inventory.ErrInsufficientStock, item.Name(), available, qty)
			}
		}

		total := c.totalLocked(taxPercent)
		if total == 0 {
			return ErrZeroTotal
		}

		if !gateway.ProcessPayment(ctx, c.buyer, total) {
			return ErrPaymentFailed
		}

		lines := make([]order.Line, 0, len(c.items))
		for item, qty := range c.items {
			if err := tx.Deduct(item.Name(), item.Kind(), qty); err != nil {
				return err
			}
			lines = append(lines, order.Line{
				Name:      item.Name(),
				Quantity:  qty,
				UnitPrice: item.DiscountedUnitPrice(item.Discount()),
			})
		}

		o, err := order.New(
			c.buyer.Email().Value(),
			c.buyer.Address(),
			c.buyer.PaymentMethod(),
			lines,
			total,
		)
		if err != nil {
			return err
		}
		if err := o.Complete(); err != nil {
			return err
		}

		c.buyer.AddOrder(o)
		c.items = make(map[*catalog.Item]int)
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}

func (c *Cart) snapshotObserversLocked() []Observer {
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	return observers
}

func (c *Cart) dispatch(observers []Observer, change ChangeType, item *catalog.Item) {
	for _, o := range observers {
		notifySafely(o, c, change, item)
	}
}

func notifySafely(o Observer, c *Cart, change ChangeType, item *catalog.Item) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cart observer panicked",
				"buyer", c.buyer.Email().Value(),
				"change", string(change),
				"panic", r,
			)
		}
	}()
	o.Notify(c, change, item)
}
