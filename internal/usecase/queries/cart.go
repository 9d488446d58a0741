package queries

import (
	"context"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/user"
	"furnistore/internal/pkg/config"
	"furnistore/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartEntryView struct {
	Name                string  `json:"name"`
	Kind                string  `json:"kind"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	DiscountedUnitPrice float64 `json:"discountedUnitPrice"`
}

type CartView struct {
	BuyerEmail string          `json:"buyerEmail"`
	Discount   string          `json:"discount"`
	Entries    []CartEntryView `json:"entries"`
	Total      float64         `json:"total"`
}

// CartProvider hands out the buyer's live cart, creating an empty one on
// first access. A buyer who never added anything still gets a valid view.
type CartProvider interface {
	GetOrCreate(buyer *user.User) *cart.Cart
}

type CartQueries interface {
	ForBuyer(ctx context.Context, buyerID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	users   UserFinder
	carts   CartProvider
	pricing config.PricingConfig
}

func NewCartQueries(users UserFinder, carts CartProvider, pricing config.PricingConfig) CartQueries {
	return &cartQueriesImpl{users: users, carts: carts, pricing: pricing}
}

func (q *cartQueriesImpl) ForBuyer(_ context.Context, buyerID uuid.UUID) (*CartView, error) {
	buyer, err := q.users.FindByID(buyerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	return NewCartView(q.carts.GetOrCreate(buyer), q.pricing.TaxPercent), nil
}

func NewCartView(c *cart.Cart, taxPercent float64) *CartView {
	entries := c.Entries()
	views := make([]CartEntryView, len(entries))
	for i, e := range entries {
		views[i] = CartEntryView{
			Name:                e.Item.Name(),
			Kind:                e.Item.Kind().String(),
			Quantity:            e.Quantity,
			UnitPrice:           e.Item.Price(),
			DiscountedUnitPrice: e.Item.DiscountedUnitPrice(e.Item.Discount()),
		}
	}
	return &CartView{
		BuyerEmail: c.Buyer().Email().Value(),
		Discount:   c.Discount().String(),
		Entries:    views,
		Total:      c.Total(taxPercent),
	}
}
