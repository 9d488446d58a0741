package commands

import (
	"context"
	"log/slog"

	"furnistore/internal/domain/inventory"
)

// StateSync moves the runtime registries to and from the archives. Load runs
// once at startup, Flush once at shutdown; both are best-effort and log what
// they could not restore or persist instead of failing the process.
type StateSync struct {
	inv          *inventory.Inventory
	users        UserRegistry
	carts        CartRegistry
	orders       OrderRegistry
	userArchive  UserArchive
	orderArchive OrderArchive
	cartArchive  CartArchive
	catalogStore CatalogStore
}

func NewStateSync(
	inv *inventory.Inventory,
	users UserRegistry,
	carts CartRegistry,
	orders OrderRegistry,
	userArchive UserArchive,
	orderArchive OrderArchive,
	cartArchive CartArchive,
	catalogStore CatalogStore,
) *StateSync {
	return &StateSync{
		inv:          inv,
		users:        users,
		carts:        carts,
		orders:       orders,
		userArchive:  userArchive,
		orderArchive: orderArchive,
		cartArchive:  cartArchive,
		catalogStore: catalogStore,
	}
}

func (s *StateSync) Load(ctx context.Context) error {
	items, err := s.catalogStore.LoadAll(ctx)
	if err != nil {
		slog.Warn("failed to load catalog archive", "error", err.Error())
	}
	for _, item := range items {
		if err := s.inv.AddItem(item); err != nil {
			slog.Warn("failed to restore item", "name", item.Name(), "error", err.Error())
		}
	}

	users, err := s.userArchive.LoadAll(ctx)
	if err != nil {
		slog.Warn("failed to load user archive", "error", err.Error())
	}
	for _, u := range users {
		if err := s.users.Add(u); err != nil {
			slog.Warn("failed to restore user", "email", u.Email().Value(), "error", err.Error())
		}
	}

	orders, err := s.orderArchive.LoadAll(ctx)
	if err != nil {
		slog.Warn("failed to load order archive", "error", err.Error())
	}
	for _, o := range orders {
		s.orders.Add(o)
		if buyer, err := s.users.FindByEmail(o.BuyerEmail()); err == nil {
			buyer.AddOrder(o)
		}
	}

	s.loadCarts(ctx)

	slog.Info("state restored",
		"items", len(items),
		"users", len(users),
		"orders", len(orders),
	)
	return nil
}

// loadCarts rebuilds live carts from persisted lines, re-resolving each line
// against the restored inventory. Lines whose item is gone are skipped.
func (s *StateSync) loadCarts(ctx context.Context) {
	snapshots, err := s.cartArchive.LoadAll(ctx)
	if err != nil {
		slog.Warn("failed to load cart archive", "error", err.Error())
		return
	}

	for email, lines := range snapshots {
		buyer, err := s.users.FindByEmail(email)
		if err != nil {
			slog.Warn("cart snapshot for unknown buyer", "buyer", email)
			continue
		}

		buyerCart := s.carts.GetOrCreate(buyer)
		for _, line := range lines {
			item, err := s.inv.Find(line.Name, line.Kind)
			if err != nil {
				slog.Warn("cart line references missing item", "buyer", email, "name", line.Name)
				continue
			}
			if err := buyerCart.AddItem(item, line.Quantity); err != nil {
				slog.Warn("failed to restore cart line", "buyer", email, "name", line.Name, "error", err.Error())
			}
		}
	}
}

func (s *StateSync) Flush(ctx context.Context) error {
	if err := s.catalogStore.SaveAll(ctx, s.inv.Items()); err != nil {
		slog.Warn("failed to flush catalog", "error", err.Error())
	}

	for _, u := range s.users.All() {
		if err := s.userArchive.Save(ctx, u); err != nil {
			slog.Warn("failed to flush user", "email", u.Email().Value(), "error", err.Error())
		}
	}

	for _, o := range s.orders.All() {
		if err := s.orderArchive.Save(ctx, o); err != nil {
			slog.Warn("failed to flush order", "order_id", o.ID(), "error", err.Error())
		}
	}

	for _, c := range s.carts.All() {
		entries := c.Entries()
		lines := make([]CartLine, len(entries))
		for i, e := range entries {
			lines[i] = CartLine{Name: e.Item.Name(), Kind: e.Item.Kind(), Quantity: e.Quantity}
		}
		if err := s.cartArchive.Save(ctx, c.Buyer().Email().Value(), lines); err != nil {
			slog.Warn("failed to flush cart", "buyer", c.Buyer().Email().Value(), "error", err.Error())
		}
	}

	slog.Info("state flushed")
	return nil
}
