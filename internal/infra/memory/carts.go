package memory

import (
	"log/slog"
	"sync"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/user"
	"furnistore/internal/infra"

	"github.com/google/uuid"
)

// CartRegistry keeps one live cart per buyer. Carts are created lazily on
// first access and share the single process-wide inventory.
type CartRegistry struct {
	mu        sync.Mutex
	inv       *inventory.Inventory
	observers []cart.Observer
	carts     map[uuid.UUID]*cart.Cart
}

func NewCartRegistry(inv *inventory.Inventory, observers []cart.Observer) *CartRegistry {
	return &CartRegistry{
		inv:       inv,
		observers: observers,
		carts:     make(map[uuid.UUID]*cart.Cart),
	}
}

func (r *CartRegistry) GetOrCreate(buyer *user.User) *cart.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[buyer.ID()]; ok {
		return c
	}

	c := cart.New(buyer, r.inv)
	for _, o := range r.observers {
		c.RegisterObserver(o)
	}
	r.carts[buyer.ID()] = c
	return c
}

func (r *CartRegistry) Find(buyerID uuid.UUID) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[buyerID]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "cart not found", nil)
	}
	return c, nil
}

func (r *CartRegistry) All() []*cart.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts := make([]*cart.Cart, 0, len(r.carts))
	for _, c := range r.carts {
		carts = append(carts, c)
	}
	return carts
}
