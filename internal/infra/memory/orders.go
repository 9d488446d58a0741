package memory

import (
	"log/slog"
	"sort"
	"sync"

	"furnistore/internal/domain/order"
	"furnistore/internal/infra"

	"github.com/google/uuid"
)

// OrderRegistry is the authoritative in-process order store. Listings come
// back oldest first.
type OrderRegistry struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*order.Order
	sorted []*order.Order
}

func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{
		byID: make(map[uuid.UUID]*order.Order),
	}
}

func (r *OrderRegistry) Add(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID()]; exists {
		return
	}
	r.byID[o.ID()] = o
	r.sorted = append(r.sorted, o)
	sort.SliceStable(r.sorted, func(i, j int) bool {
		return r.sorted[i].CreatedAt().Before(r.sorted[j].CreatedAt())
	})
}

func (r *OrderRegistry) FindByID(id uuid.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "order not found", nil)
	}
	return o, nil
}

func (r *OrderRegistry) ListByBuyer(email string) []*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.Order
	for _, o := range r.sorted {
		if o.BuyerEmail() == email {
			orders = append(orders, o)
		}
	}
	return orders
}

func (r *OrderRegistry) All() []*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, len(r.sorted))
	copy(orders, r.sorted)
	return orders
}
