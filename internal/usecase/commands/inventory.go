package commands

import (
	"context"
	"errors"
	"log/slog"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/pkg/errs"
	"furnistore/internal/usecase/queries"
)

type InventoryCommands interface {
	AddItem(ctx context.Context, req reqdto.AddItemRequest) (*queries.ItemView, error)
	RemoveItem(ctx context.Context, req reqdto.RemoveItemRequest) error
	UpdateQuantity(ctx context.Context, req reqdto.UpdateQuantityRequest) (*queries.ItemView, error)
}

type inventoryCommandsImpl struct {
	inv   *inventory.Inventory
	store CatalogStore
}

func NewInventoryCommands(inv *inventory.Inventory, store CatalogStore) InventoryCommands {
	return &inventoryCommandsImpl{inv: inv, store: store}
}

func (c *inventoryCommandsImpl) AddItem(ctx context.Context, req reqdto.AddItemRequest) (*queries.ItemView, error) {
	item, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.inv.AddItem(item); err != nil {
		return nil, markInventoryErr(err)
	}

	// AddItem merges into an existing entry when (kind, name) already exists;
	// re-read so the view reflects the stored item.
	stored, err := c.inv.Find(item.Name(), item.Kind())
	if err != nil {
		return nil, errs.Mark(err, ErrItemNotFound)
	}

	c.archiveCatalog(ctx)
	return queries.NewItemView(stored), nil
}

func (c *inventoryCommandsImpl) RemoveItem(ctx context.Context, req reqdto.RemoveItemRequest) error {
	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.inv.RemoveItem(req.Name, kind); err != nil {
		return markInventoryErr(err)
	}

	c.archiveCatalog(ctx)
	return nil
}

func (c *inventoryCommandsImpl) UpdateQuantity(ctx context.Context, req reqdto.UpdateQuantityRequest) (*queries.ItemView, error) {
	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.inv.UpdateQuantity(req.Name, kind, req.Quantity); err != nil {
		return nil, markInventoryErr(err)
	}

	item, err := c.inv.Find(req.Name, kind)
	if err != nil {
		return nil, errs.Mark(err, ErrItemNotFound)
	}

	c.archiveCatalog(ctx)
	return queries.NewItemView(item), nil
}

func (c *inventoryCommandsImpl) archiveCatalog(ctx context.Context) {
	if err := c.store.SaveAll(ctx, c.inv.Items()); err != nil {
		slog.Warn("failed to archive catalog", "error", err.Error())
	}
}

func markInventoryErr(err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return errs.Mark(err, ErrItemNotFound)
	case errors.Is(err, inventory.ErrNegativeQuantity):
		return errs.Mark(err, ErrInvalidQuantity)
	case errors.Is(err, inventory.ErrInsufficientStock):
		return errs.Mark(err, ErrInsufficientStock)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
