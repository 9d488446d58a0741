package commands

import (
	"context"
	"errors"
	"log/slog"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, buyerID uuid.UUID, req reqdto.CartItemRequest) error
	RemoveItem(ctx context.Context, buyerID uuid.UUID, req reqdto.CartItemRequest) error
	SetDiscount(ctx context.Context, buyerID uuid.UUID, req reqdto.SetCartDiscountRequest) error
	Clear(ctx context.Context, buyerID uuid.UUID) error
}

type cartCommandsImpl struct {
	users   UserRegistry
	carts   CartRegistry
	inv     *inventory.Inventory
	archive CartArchive
}

func NewCartCommands(users UserRegistry, carts CartRegistry, inv *inventory.Inventory, archive CartArchive) CartCommands {
	return &cartCommandsImpl{
		users:   users,
		carts:   carts,
		inv:     inv,
		archive: archive,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, buyerID uuid.UUID, req reqdto.CartItemRequest) error {
	buyerCart, item, err := c.resolve(buyerID, req.Name, req.Kind)
	if err != nil {
		return err
	}

	if err := buyerCart.AddItem(item, req.Quantity); err != nil {
		return markCartErr(err)
	}

	c.archiveSnapshot(ctx, buyerCart)
	return nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, buyerID uuid.UUID, req reqdto.CartItemRequest) error {
	buyerCart, item, err := c.resolve(buyerID, req.Name, req.Kind)
	if err != nil {
		return err
	}

	if err := buyerCart.RemoveItem(item, req.Quantity); err != nil {
		return markCartErr(err)
	}

	c.archiveSnapshot(ctx, buyerCart)
	return nil
}

func (c *cartCommandsImpl) SetDiscount(_ context.Context, buyerID uuid.UUID, req reqdto.SetCartDiscountRequest) error {
	buyer, err := c.users.FindByID(buyerID)
	if err != nil {
		return errs.Mark(err, ErrUserNotFound)
	}

	d, err := catalog.NewDiscount(req.Discount)
	if err != nil {
		return errs.Mark(err, ErrInvalidDiscount)
	}

	if err := c.carts.GetOrCreate(buyer).SetDiscount(d); err != nil {
		return errs.Mark(err, ErrInvalidDiscount)
	}
	return nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, buyerID uuid.UUID) error {
	buyer, err := c.users.FindByID(buyerID)
	if err != nil {
		return errs.Mark(err, ErrUserNotFound)
	}

	buyerCart := c.carts.GetOrCreate(buyer)
	buyerCart.Clear()

	c.archiveSnapshot(ctx, buyerCart)
	return nil
}

func (c *cartCommandsImpl) resolve(buyerID uuid.UUID, name, kindStr string) (*cart.Cart, *catalog.Item, error) {
	buyer, err := c.users.FindByID(buyerID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrUserNotFound)
	}

	kind, err := catalog.NewKind(kindStr)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDomainValidation)
	}

	item, err := c.inv.Find(name, kind)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrItemNotFound)
	}

	return c.carts.GetOrCreate(buyer), item, nil
}

func (c *cartCommandsImpl) archiveSnapshot(ctx context.Context, buyerCart *cart.Cart) {
	entries := buyerCart.Entries()
	lines := make([]CartLine, len(entries))
	for i, e := range entries {
		lines[i] = CartLine{Name: e.Item.Name(), Kind: e.Item.Kind(), Quantity: e.Quantity}
	}

	email := buyerCart.Buyer().Email().Value()
	if err := c.archive.Save(ctx, email, lines); err != nil {
		slog.Warn("failed to archive cart", "buyer", email, "error", err.Error())
	}
}

func markCartErr(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return errs.Mark(err, ErrInvalidQuantity)
	case errors.Is(err, cart.ErrItemNotInCart):
		return errs.Mark(err, ErrItemNotFound)
	case errors.Is(err, inventory.ErrItemNotFound):
		return errs.Mark(err, ErrItemNotFound)
	case errors.Is(err, inventory.ErrInsufficientStock):
		return errs.Mark(err, ErrInsufficientStock)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
