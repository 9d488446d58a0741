package commands

import (
	"context"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"

	"github.com/google/uuid"
)

// Runtime registries own the process-wide state the original kept in global
// maps. They are authoritative; the archives below only make them survive a
// restart, best-effort.

type UserRegistry interface {
	Add(u *user.User) error
	FindByEmail(email string) (*user.User, error)
	FindByID(id uuid.UUID) (*user.User, error)
	Remove(email string) error
	All() []*user.User
}

type CartRegistry interface {
	GetOrCreate(buyer *user.User) *cart.Cart
	Find(buyerID uuid.UUID) (*cart.Cart, error)
	All() []*cart.Cart
}

type OrderRegistry interface {
	Add(o *order.Order)
	FindByID(id uuid.UUID) (*order.Order, error)
	ListByBuyer(email string) []*order.Order
	All() []*order.Order
}

// Archives persist snapshots to an external store. Failures are reported,
// never fatal; durability is explicitly best-effort.

type UserArchive interface {
	Save(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, email string) error
	LoadAll(ctx context.Context) ([]*user.User, error)
}

type OrderArchive interface {
	Save(ctx context.Context, o *order.Order) error
	LoadAll(ctx context.Context) ([]*order.Order, error)
}

// CartLine is the persisted shape of one cart position; the live item is
// re-resolved against the inventory on load.
type CartLine struct {
	Name     string
	Kind     catalog.Kind
	Quantity int
}

type CartArchive interface {
	Save(ctx context.Context, buyerEmail string, lines []CartLine) error
	LoadAll(ctx context.Context) (map[string][]CartLine, error)
}

type CatalogStore interface {
	LoadAll(ctx context.Context) ([]*catalog.Item, error)
	SaveAll(ctx context.Context, items []*catalog.Item) error
}
