package commands

import (
	"context"
	"errors"
	"log/slog"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/order"
	"furnistore/internal/pkg/config"
	"furnistore/internal/pkg/errs"
	"furnistore/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutCommands interface {
	Checkout(ctx context.Context, buyerID uuid.UUID) (*queries.OrderView, error)
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)
}

type checkoutCommandsImpl struct {
	users        UserRegistry
	carts        CartRegistry
	orders       OrderRegistry
	gateway      cart.PaymentGateway
	orderArchive OrderArchive
	cartArchive  CartArchive
	catalogStore CatalogStore
	inv          *inventory.Inventory
	pricing      config.PricingConfig
}

func NewCheckoutCommands(
	users UserRegistry,
	carts CartRegistry,
	orders OrderRegistry,
	gateway cart.PaymentGateway,
	orderArchive OrderArchive,
	cartArchive CartArchive,
	catalogStore CatalogStore,
	inv *inventory.Inventory,
	pricing config.PricingConfig,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		users:        users,
		carts:        carts,
		orders:       orders,
		gateway:      gateway,
		orderArchive: orderArchive,
		cartArchive:  cartArchive,
		catalogStore: catalogStore,
		inv:          inv,
		pricing:      pricing,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, buyerID uuid.UUID) (*queries.OrderView, error) {
	buyer, err := c.users.FindByID(buyerID)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	buyerCart := c.carts.GetOrCreate(buyer)

	placed, err := buyerCart.Checkout(ctx, c.gateway, c.pricing.TaxPercent)
	if err != nil {
		return nil, markCheckoutErr(err)
	}

	c.orders.Add(placed)
	c.archiveCheckout(ctx, buyer.Email().Value(), placed)

	return queries.NewOrderView(placed), nil
}

func (c *checkoutCommandsImpl) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	o, err := c.orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderNotFound)
	}

	if err := o.MarkDelivered(); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.orderArchive.Save(ctx, o); err != nil {
		slog.Warn("failed to archive order", "order_id", o.ID(), "error", err.Error())
	}

	return queries.NewOrderView(o), nil
}

// archiveCheckout persists the post-checkout state best-effort: the placed
// order, the now-empty cart, and the deducted stock levels.
func (c *checkoutCommandsImpl) archiveCheckout(ctx context.Context, buyerEmail string, placed *order.Order) {
	if err := c.orderArchive.Save(ctx, placed); err != nil {
		slog.Warn("failed to archive order", "order_id", placed.ID(), "error", err.Error())
	}
	if err := c.cartArchive.Save(ctx, buyerEmail, nil); err != nil {
		slog.Warn("failed to archive cart", "buyer", buyerEmail, "error", err.Error())
	}
	if err := c.catalogStore.SaveAll(ctx, c.inv.Items()); err != nil {
		slog.Warn("failed to archive catalog", "error", err.Error())
	}
}

func markCheckoutErr(err error) error {
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		return errs.Mark(err, ErrEmptyCart)
	case errors.Is(err, cart.ErrZeroTotal):
		return errs.Mark(err, ErrZeroTotal)
	case errors.Is(err, cart.ErrPaymentFailed):
		return errs.Mark(err, ErrPaymentFailed)
	case errors.Is(err, inventory.ErrInsufficientStock):
		return errs.Mark(err, ErrInsufficientStock)
	case errors.Is(err, inventory.ErrItemNotFound):
		return errs.Mark(err, ErrItemNotFound)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
